package tree

import "fmt"

/*
Node is a node of a decision tree. It is either a *Leaf or a *Decision;
no other type implements it.
*/
type Node interface {
	node()
}

/*
Leaf is a terminal node holding the class label predicted for the examples
reaching it.
*/
type Leaf struct {
	Label string
}

/*
Decision is an internal node that routes examples to one of its branches
according to their value for an attribute.
*/
type Decision struct {
	// The name of the attribute the node splits on.
	Attribute string
	// The position of the attribute in the schema the tree was induced
	// with, that is, the index of its value on examples.
	Position int
	// One branch per value of the attribute that was present on the
	// training examples reaching the node, in schema value order.
	Branches []*Branch
}

/*
Branch connects a decision node with the subtree for examples with a given
value for the decision's attribute.
*/
type Branch struct {
	Value string
	Node  Node
}

func (*Leaf) node()     {}
func (*Decision) node() {}

// NewDecision returns a decision node on the given attribute without branches.
func NewDecision(attribute string, position int) *Decision {
	return &Decision{Attribute: attribute, Position: position}
}

/*
Branch takes a value and returns the subtree for it and true, or nil and false
if the node has no branch for that value.
*/
func (d *Decision) Branch(value string) (Node, bool) {
	for _, b := range d.Branches {
		if b.Value == value {
			return b.Node, true
		}
	}
	return nil, false
}

/*
Values returns the values the node has branches for, in branch order.
*/
func (d *Decision) Values() []string {
	result := make([]string, 0, len(d.Branches))
	for _, b := range d.Branches {
		result = append(result, b.Value)
	}
	return result
}

func (l *Leaf) String() string {
	return fmt.Sprintf("{ %s }", l.Label)
}

func (d *Decision) String() string {
	return fmt.Sprintf("{ %s? }", d.Attribute)
}
