package id3

import (
	"math"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
Entropy takes a slice of examples and returns the entropy of their labels
in bits: a measure of the disinformation we have on the class of an example
taken from the slice. It is 0 for an empty slice and for a slice where all
examples share a label, and at most log2(k) for k distinct labels.
*/
func Entropy(examples []*dataset.Example) float64 {
	if len(examples) == 0 {
		return 0.0
	}
	total := float64(len(examples))
	var result float64
	for _, lc := range dataset.CountLabels(examples) {
		p := float64(lc.Count) / total
		result -= p * math.Log2(p)
	}
	return result
}

/*
InformationGain takes a slice of examples, an attribute name and a schema
and returns the reduction of entropy obtained by splitting the examples on
the attribute, or an error wrapping ErrInvalidInput if the attribute is not
in the schema or an example does not conform to it.
*/
func InformationGain(examples []*dataset.Example, attribute string, schema *feature.Schema) (float64, error) {
	p, err := NewPartition(examples, attribute, schema)
	if err != nil {
		return 0.0, err
	}
	return p.InformationGain(), nil
}
