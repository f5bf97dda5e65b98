package json

import (
	"fmt"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

type node struct {
	Label     *string   `json:"label,omitempty"`
	Attribute string    `json:"attribute,omitempty"`
	Branches  []*branch `json:"branches,omitempty"`
}

type branch struct {
	Value string `json:"value"`
	Node  *node  `json:"node"`
}

func encodeNode(n tree.Node) (*node, error) {
	switch tn := n.(type) {
	case *tree.Leaf:
		label := tn.Label
		return &node{Label: &label}, nil
	case *tree.Decision:
		jn := &node{Attribute: tn.Attribute, Branches: make([]*branch, 0, len(tn.Branches))}
		for _, b := range tn.Branches {
			child, err := encodeNode(b.Node)
			if err != nil {
				return nil, err
			}
			jn.Branches = append(jn.Branches, &branch{Value: b.Value, Node: child})
		}
		return jn, nil
	}
	return nil, fmt.Errorf("encoding node: unknown node type %T", n)
}

type decoder struct {
	schema *feature.Schema
	labels map[string]bool
}

// decode converts a JSON node into a tree node. path describes where the
// node is in the tree for error messages.
func (d *decoder) decode(jn *node, path string) (tree.Node, error) {
	if jn == nil {
		return nil, fmt.Errorf("node at %s is missing", path)
	}
	if jn.Label != nil {
		if jn.Attribute != "" || len(jn.Branches) > 0 {
			return nil, fmt.Errorf("node at %s has both a label and an attribute", path)
		}
		if d.labels != nil && !d.labels[*jn.Label] {
			return nil, fmt.Errorf("leaf at %s has undeclared label %q", path, *jn.Label)
		}
		return &tree.Leaf{Label: *jn.Label}, nil
	}
	a, ok := d.schema.Attribute(jn.Attribute)
	if !ok {
		return nil, fmt.Errorf("node at %s splits on unknown attribute %q", path, jn.Attribute)
	}
	if len(jn.Branches) == 0 {
		return nil, fmt.Errorf("decision on %s at %s has no branches", jn.Attribute, path)
	}
	position, _ := d.schema.Position(jn.Attribute)
	dn := tree.NewDecision(jn.Attribute, position)
	dn.Branches = make([]*tree.Branch, 0, len(jn.Branches))
	seen := make(map[string]bool, len(jn.Branches))
	for _, b := range jn.Branches {
		if b == nil {
			return nil, fmt.Errorf("decision on %s at %s has a null branch", jn.Attribute, path)
		}
		if _, err := a.Valid(b.Value); err != nil {
			return nil, fmt.Errorf("decision at %s: %w", path, err)
		}
		if seen[b.Value] {
			return nil, fmt.Errorf("decision on %s at %s has two branches for %q", jn.Attribute, path, b.Value)
		}
		seen[b.Value] = true
		child, err := d.decode(b.Node, fmt.Sprintf("%s/%s=%s", path, jn.Attribute, b.Value))
		if err != nil {
			return nil, err
		}
		dn.Branches = append(dn.Branches, &tree.Branch{Value: b.Value, Node: child})
	}
	return dn, nil
}
