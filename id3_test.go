package id3

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func weatherSchema() *feature.Schema {
	return feature.MustSchema(
		feature.NewAttribute("Weather", "Sunny", "Rainy"),
		feature.NewAttribute("Humidity", "High", "Low"),
	)
}

func weatherExamples() []*dataset.Example {
	return []*dataset.Example{
		dataset.NewExample("e1", "Play", "Sunny", "Low"),
		dataset.NewExample("e2", "NoPlay", "Rainy", "High"),
		dataset.NewExample("e3", "Play", "Sunny", "High"),
	}
}

// gridSchema and gridExamples describe every combination of three
// attributes labeled by a function of them.
func gridSchema() *feature.Schema {
	return feature.MustSchema(
		feature.NewAttribute("A", "a0", "a1", "a2"),
		feature.NewAttribute("B", "b0", "b1"),
		feature.NewAttribute("C", "c0", "c1"),
	)
}

func gridExamples() []*dataset.Example {
	var examples []*dataset.Example
	for _, a := range []string{"a0", "a1", "a2"} {
		for _, b := range []string{"b0", "b1"} {
			for _, c := range []string{"c0", "c1"} {
				label := "no"
				if a == "a0" || (b == "b1" && c == "c0") {
					label = "yes"
				}
				name := fmt.Sprintf("%s-%s-%s", a, b, c)
				examples = append(examples, dataset.NewExample(name, label, a, b, c))
			}
		}
	}
	return examples
}
