/*
Package tree defines the decision trees induced from examples and the
procedure to classify examples with them.

A tree is a *Leaf or a *Decision whose branches lead to further nodes. Trees
are built once and never modified afterwards, so a tree can be used by any
number of goroutines at the same time.
*/
package tree

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
)

/*
Classify takes the root of a tree and an example and returns the label the
tree predicts for it.

Starting on the root it descends through the branch matching the example's
value for each decision node's attribute until a leaf is reached. If a
decision node has no branch for the example's value an *UnclassifiableError
is returned. If the example has no value at the position a decision node
asks about, or the example is nil, an error wrapping ErrMalformedExample is
returned.
*/
func Classify(root Node, e *dataset.Example) (string, error) {
	if root == nil {
		return "", fmt.Errorf("nil tree cannot classify examples")
	}
	if e == nil {
		return "", fmt.Errorf("classifying: %w: nil example", ErrMalformedExample)
	}
	n := root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label, nil
		case *Decision:
			v, ok := e.Value(node.Position)
			if !ok {
				return "", fmt.Errorf("classifying %s: %w: no value for attribute %s at position %d", e.Name(), ErrMalformedExample, node.Attribute, node.Position)
			}
			next, ok := node.Branch(v)
			if !ok {
				return "", &UnclassifiableError{Example: e.Name(), Attribute: node.Attribute, Value: v}
			}
			n = next
		default:
			return "", fmt.Errorf("classifying %s: unknown node type %T", e.Name(), n)
		}
	}
}

/*
Traverse takes the root of a tree, a bottomup boolean and an error-returning
function that takes a node and its depth (0 for the root) and goes through
the tree running the function with every node.
Traverse will call the function with a parent node before calling it for its
children if bottomup is false, and after its children if bottomup is true.
Branches are visited in order. If the call to the function returns an error,
the traversing is aborted and the error is returned.
*/
func Traverse(root Node, bottomup bool, f func(n Node, depth int) error) error {
	if root == nil {
		return nil
	}
	return traverse(root, 0, bottomup, f)
}

func traverse(n Node, depth int, bottomup bool, f func(Node, int) error) error {
	if !bottomup {
		if err := f(n, depth); err != nil {
			return err
		}
	}
	if d, ok := n.(*Decision); ok {
		for _, b := range d.Branches {
			if err := traverse(b.Node, depth+1, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(n, depth)
	}
	return nil
}

/*
Labels returns the distinct labels on the leaves of the tree in the order
they are first reached by a top-down traversal.
*/
func Labels(root Node) []string {
	var result []string
	seen := make(map[string]bool)
	Traverse(root, false, func(n Node, _ int) error {
		if l, ok := n.(*Leaf); ok && !seen[l.Label] {
			seen[l.Label] = true
			result = append(result, l.Label)
		}
		return nil
	})
	return result
}
