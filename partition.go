package id3

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
Partition represents a partition of a slice of examples according to an
attribute, with the information gain the split yields on their labels.
There is one criterion and one subset for each value of the attribute that
is present on the examples, in the attribute's value order.
*/
type Partition struct {
	Attribute       *feature.Attribute
	Position        int
	Criteria        []*feature.Criterion
	Subsets         [][]*dataset.Example
	informationGain float64
}

/*
NewPartition takes a slice of examples, an attribute name and a schema and
returns the partition of the examples for the attribute. It returns an error
wrapping ErrInvalidInput if the slice is empty, the attribute is not in the
schema, or an example does not have a valid value for it.
*/
func NewPartition(examples []*dataset.Example, attribute string, schema *feature.Schema) (*Partition, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: cannot partition an empty example set on %s", ErrInvalidInput, attribute)
	}
	a, ok := schema.Attribute(attribute)
	if !ok {
		return nil, fmt.Errorf("%w: attribute %q is not in the schema", ErrInvalidInput, attribute)
	}
	position, _ := schema.Position(attribute)
	for _, e := range examples {
		if e.Len() != schema.Len() {
			return nil, fmt.Errorf("%w: example %s has %d values for %d attributes", ErrInvalidInput, e.Name(), e.Len(), schema.Len())
		}
		v, _ := e.Value(position)
		if _, err := a.Valid(v); err != nil {
			return nil, fmt.Errorf("%w: example %s: %v", ErrInvalidInput, e.Name(), err)
		}
	}
	p := &Partition{Attribute: a, Position: position}
	informationGain := Entropy(examples)
	totalCount := float64(len(examples))
	for _, value := range a.Values() {
		c, err := feature.NewCriterion(schema, attribute, value)
		if err != nil {
			return nil, err
		}
		subset := dataset.SubsetWith(examples, c)
		if len(subset) == 0 {
			continue
		}
		p.Criteria = append(p.Criteria, c)
		p.Subsets = append(p.Subsets, subset)
		informationGain -= Entropy(subset) * float64(len(subset)) / totalCount
	}
	// rounding may leave a split that gains nothing slightly below zero
	if informationGain < 0 {
		informationGain = 0
	}
	p.informationGain = informationGain
	return p, nil
}

// InformationGain returns the information gain of the partition in bits.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

func (p *Partition) String() string {
	return fmt.Sprintf("{ %s: %d subsets, informationGain=%f }", p.Attribute.Name(), len(p.Subsets), p.informationGain)
}
