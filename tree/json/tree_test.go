package json

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

func weatherModel() *Model {
	schema := feature.MustSchema(
		feature.NewAttribute("Weather", "Sunny", "Rainy"),
		feature.NewAttribute("Humidity", "High", "Medium", "Low"),
	)
	root := &tree.Decision{Attribute: "Humidity", Position: 1, Branches: []*tree.Branch{
		{Value: "High", Node: &tree.Decision{Attribute: "Weather", Position: 0, Branches: []*tree.Branch{
			{Value: "Sunny", Node: &tree.Leaf{Label: "Play"}},
			{Value: "Rainy", Node: &tree.Leaf{Label: "NoPlay"}},
		}}},
		{Value: "Low", Node: &tree.Leaf{Label: "Play"}},
	}}
	return &Model{Schema: schema, Labels: []string{"Play", "NoPlay"}, Root: root}
}

func TestWriteTree(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteTree(buf, weatherModel()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"attributes":[{"name":"Weather","values":["Sunny","Rainy"]},{"name":"Humidity","values":["High","Medium","Low"]}],` +
		`"labels":["Play","NoPlay"],` +
		`"root":{"attribute":"Humidity","branches":[` +
		`{"value":"High","node":{"attribute":"Weather","branches":[{"value":"Sunny","node":{"label":"Play"}},{"value":"Rainy","node":{"label":"NoPlay"}}]}},` +
		`{"value":"Low","node":{"label":"Play"}}]}}` + "\n"
	if buf.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, buf.String())
	}
}

func TestReadTree(t *testing.T) {
	m := weatherModel()
	buf := &bytes.Buffer{}
	if err := WriteTree(buf, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	read, err := ReadTree(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(read.Root, m.Root) {
		t.Errorf("expected read tree to equal the written one")
	}
	if !reflect.DeepEqual(read.Labels, m.Labels) || !reflect.DeepEqual(read.Schema.Names(), m.Schema.Names()) {
		t.Errorf("expected schema and labels to be preserved, got %v %v", read.Schema.Names(), read.Labels)
	}
}

func TestReadTreeResolvesPositions(t *testing.T) {
	doc := `{"attributes":[{"name":"A","values":["a0","a1"]},{"name":"B","values":["b0","b1"]}],"labels":[],` +
		`"root":{"attribute":"B","branches":[{"value":"b0","node":{"label":"x"}},{"value":"b1","node":{"label":"y"}}]}}`
	m, err := ReadTree(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := m.Root.(*tree.Decision)
	if !ok || d.Position != 1 {
		t.Errorf("expected decision on position 1, got %#v", m.Root)
	}
}

func TestReadTreeErrors(t *testing.T) {
	attributes := `"attributes":[{"name":"A","values":["a0","a1"]}]`
	testCases := map[string]string{
		"malformed":         `{`,
		"no root":           `{` + attributes + `}`,
		"unknown attribute": `{` + attributes + `,"root":{"attribute":"Z","branches":[{"value":"a0","node":{"label":"x"}}]}}`,
		"unknown value":     `{` + attributes + `,"root":{"attribute":"A","branches":[{"value":"a9","node":{"label":"x"}}]}}`,
		"repeated value":    `{` + attributes + `,"root":{"attribute":"A","branches":[{"value":"a0","node":{"label":"x"}},{"value":"a0","node":{"label":"y"}}]}}`,
		"no branches":       `{` + attributes + `,"root":{"attribute":"A"}}`,
		"missing child":     `{` + attributes + `,"root":{"attribute":"A","branches":[{"value":"a0"}]}}`,
		"undeclared label":  `{` + attributes + `,"labels":["x"],"root":{"label":"y"}}`,
		"label and split":   `{` + attributes + `,"root":{"label":"x","attribute":"A"}}`,
	}
	for name, doc := range testCases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadTree(strings.NewReader(doc)); err == nil {
				t.Errorf("expected error reading %s", doc)
			}
		})
	}
}
