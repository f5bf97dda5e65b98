/*
Package json provides methods to serialize trees as JSON documents together
with the schema they were induced with, and to read them back.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/id3/feature"
	fjson "github.com/pbanos/id3/feature/json"
	"github.com/pbanos/id3/tree"
)

/*
Model is a tree together with what is needed to use it: the schema
describing the examples it classifies and the class labels it may predict.
*/
type Model struct {
	Schema *feature.Schema
	Labels []string
	Root   tree.Node
}

type document struct {
	Attributes []*fjson.Attribute `json:"attributes"`
	Labels     []string           `json:"labels"`
	Root       *node              `json:"root"`
}

/*
WriteTree takes an io.Writer and a model and serializes the model as JSON
onto the writer.
A model is serialized as a JSON object with the following fields:
* "attributes": an array with the attributes of the schema in order, each
  an object with a "name" and its "values"
* "labels": an array with the class labels
* "root": the root node of the tree. Leaves are objects with a "label",
  decision nodes objects with an "attribute" and its "branches", each an
  object with a "value" and the "node" it leads to.
An error is returned if the model has no schema or tree, or if it cannot be
written onto the writer.
*/
func WriteTree(w io.Writer, m *Model) error {
	if m == nil || m.Schema == nil || m.Root == nil {
		return fmt.Errorf("writing tree: model must have a schema and a root")
	}
	root, err := encodeNode(m.Root)
	if err != nil {
		return fmt.Errorf("writing tree: %w", err)
	}
	labels := m.Labels
	if labels == nil {
		labels = []string{}
	}
	doc := &document{
		Attributes: fjson.FromSchema(m.Schema),
		Labels:     labels,
		Root:       root,
	}
	err = json.NewEncoder(w).Encode(doc)
	if err != nil {
		return fmt.Errorf("writing tree: %v", err)
	}
	return nil
}

/*
ReadTree takes an io.Reader with a JSON document as written by WriteTree and
returns the model it holds. The position of each decision node's attribute
is resolved with the schema in the document. An error is returned if the
JSON cannot be read, if a node refers to an attribute or value not in the
schema or if a leaf has a label not among the declared ones.
*/
func ReadTree(r io.Reader) (*Model, error) {
	doc := &document{}
	err := json.NewDecoder(r).Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %v", err)
	}
	schema, err := fjson.ToSchema(doc.Attributes)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("reading tree: no root node")
	}
	d := &decoder{schema: schema}
	if len(doc.Labels) > 0 {
		d.labels = make(map[string]bool, len(doc.Labels))
		for _, l := range doc.Labels {
			d.labels[l] = true
		}
	}
	root, err := d.decode(doc.Root, "root")
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	return &Model{Schema: schema, Labels: doc.Labels, Root: root}, nil
}
