/*
Package dataset defines the examples trees are induced from and tested
against, and the sets that group them together with their schema.
*/
package dataset

import (
	"errors"
	"fmt"

	"github.com/pbanos/id3/feature"
)

// ErrInvalidExample is returned (wrapped) when an example does not conform
// to the schema or labels of the set it is added to.
var ErrInvalidExample = errors.New("invalid example")

/*
Set represents an ordered collection of examples described by a schema.
Labels, when not empty, lists every class label examples may have.
*/
type Set struct {
	Schema   *feature.Schema
	Labels   []string
	Examples []*Example
}

/*
New takes a schema, the class labels and a slice of examples and returns a
set with them or an error wrapping ErrInvalidExample if any example does not
have exactly one valid value for each attribute of the schema, or has a
label not among the given ones. An empty labels slice accepts any label.
*/
func New(schema *feature.Schema, labels []string, examples []*Example) (*Set, error) {
	if schema == nil {
		return nil, fmt.Errorf("building set: nil schema")
	}
	allowed := make(map[string]bool, len(labels))
	for _, l := range labels {
		allowed[l] = true
	}
	for i, e := range examples {
		if e == nil {
			return nil, fmt.Errorf("building set: %w: nil example at position %d", ErrInvalidExample, i)
		}
		if err := schema.Validate(e.values); err != nil {
			return nil, fmt.Errorf("building set: %w %s: %v", ErrInvalidExample, e.name, err)
		}
		if len(allowed) > 0 && !allowed[e.label] {
			return nil, fmt.Errorf("building set: %w %s: unknown label %q", ErrInvalidExample, e.name, e.label)
		}
	}
	return &Set{schema, labels, examples}, nil
}

// Count returns the number of examples in the set.
func (s *Set) Count() int {
	return len(s.Examples)
}

func (s *Set) String() string {
	return fmt.Sprintf("[ %v ]", len(s.Examples))
}

/*
LabelCount holds the number of examples with a given label.
*/
type LabelCount struct {
	Label string
	Count int
}

/*
CountLabels takes a slice of examples and returns the number of examples for
each label, ordered by the first appearance of the label in the slice.
*/
func CountLabels(examples []*Example) []LabelCount {
	var result []LabelCount
	index := make(map[string]int)
	for _, e := range examples {
		i, ok := index[e.label]
		if !ok {
			i = len(result)
			index[e.label] = i
			result = append(result, LabelCount{Label: e.label})
		}
		result[i].Count++
	}
	return result
}

/*
SubsetWith takes a slice of examples and a criterion and returns a new slice
with the examples that satisfy it, in their original order.
*/
func SubsetWith(examples []*Example, c *feature.Criterion) []*Example {
	var result []*Example
	for _, e := range examples {
		if c.SatisfiedBy(e) {
			result = append(result, e)
		}
	}
	return result
}
