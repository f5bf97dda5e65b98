package dataset

import (
	"fmt"
	"strings"
)

/*
Example represents a labeled item from which to learn how to classify others,
or to test a classifier against.

Its values are positional: the value at index i is the value for the i-th
attribute of the schema describing the example. Examples are immutable.
*/
type Example struct {
	name   string
	label  string
	values []string
}

/*
NewExample takes a name, a class label and the positional attribute values
and returns an example. The values slice is copied, so later changes on it
do not alter the example.
*/
func NewExample(name, label string, values ...string) *Example {
	vs := make([]string, len(values))
	copy(vs, values)
	return &Example{name, label, vs}
}

// Name returns the name of the example.
func (e *Example) Name() string {
	return e.name
}

// Label returns the class label of the example.
func (e *Example) Label() string {
	return e.label
}

// Len returns the number of attribute values of the example.
func (e *Example) Len() int {
	return len(e.values)
}

/*
Value takes an attribute position and returns the example's value for it
and true, or an empty string and false if the position is out of range.
*/
func (e *Example) Value(position int) (string, bool) {
	if position < 0 || position >= len(e.values) {
		return "", false
	}
	return e.values[position], true
}

// Values returns a copy of the example's attribute values.
func (e *Example) Values() []string {
	vs := make([]string, len(e.values))
	copy(vs, e.values)
	return vs
}

func (e *Example) String() string {
	return fmt.Sprintf("%s(%s)[%s]", e.name, e.label, strings.Join(e.values, " "))
}
