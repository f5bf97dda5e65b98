/*
Package feature defines the attributes examples are described with and the
schema that maps every attribute name to the finite set of values it may take.
*/
package feature

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// ErrUnknownValue is returned (wrapped) when a value does not belong to the
// value set of an attribute.
var ErrUnknownValue = errors.New("unknown attribute value")

/*
Attribute represents a categorical property of an example that can only
take a value among a finite, ordered set.
*/
type Attribute struct {
	name   string
	values *linkedhashset.Set
}

/*
NewAttribute takes a name string and the values available for it and returns
an attribute with them. Repeated values are kept only once, at the position of
their first occurrence.
*/
func NewAttribute(name string, values ...string) *Attribute {
	set := linkedhashset.New()
	for _, v := range values {
		set.Add(v)
	}
	return &Attribute{name, set}
}

/*
Name returns a string with the name of the attribute
*/
func (a *Attribute) Name() string {
	return a.name
}

/*
Values returns a new string slice with the values available for the attribute
in the order they were declared.
*/
func (a *Attribute) Values() []string {
	result := make([]string, 0, a.values.Size())
	for _, v := range a.values.Values() {
		result = append(result, v.(string))
	}
	return result
}

// Len returns the number of values the attribute may take.
func (a *Attribute) Len() int {
	return a.values.Size()
}

/*
Valid receives a value and returns a boolean and an error. When the
value is included in the available values of the attribute, the method
returns true and nil. Otherwise it returns false and an error wrapping
ErrUnknownValue.
*/
func (a *Attribute) Valid(value string) (bool, error) {
	if a.values.Contains(value) {
		return true, nil
	}
	return false, fmt.Errorf("attribute %s got %w %q", a.name, ErrUnknownValue, value)
}

func (a *Attribute) String() string {
	return a.name
}
