package feature

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ErrDuplicateAttribute is returned (wrapped) when building a schema with
// two attributes sharing a name.
var ErrDuplicateAttribute = errors.New("duplicate attribute")

/*
Schema maps attribute names to attributes. Its iteration order is the order
in which attributes were given to NewSchema, which is also the position of
each attribute's value inside an example.

A Schema is never modified after NewSchema returns, so it can be shared by
concurrent readers.
*/
type Schema struct {
	attributes *linkedhashmap.Map
	positions  map[string]int
}

/*
NewSchema takes a sequence of attributes and returns a schema with them or
an error wrapping ErrDuplicateAttribute if two of them share a name.
*/
func NewSchema(attributes ...*Attribute) (*Schema, error) {
	s := &Schema{
		attributes: linkedhashmap.New(),
		positions:  make(map[string]int, len(attributes)),
	}
	for i, a := range attributes {
		if a == nil {
			return nil, fmt.Errorf("building schema: nil attribute at position %d", i)
		}
		if _, ok := s.positions[a.Name()]; ok {
			return nil, fmt.Errorf("building schema: %w %s", ErrDuplicateAttribute, a.Name())
		}
		s.attributes.Put(a.Name(), a)
		s.positions[a.Name()] = i
	}
	return s, nil
}

/*
MustSchema is like NewSchema but panics on error. It is meant for
attribute lists known to be valid at compile time.
*/
func MustSchema(attributes ...*Attribute) *Schema {
	s, err := NewSchema(attributes...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of attributes in the schema.
func (s *Schema) Len() int {
	return s.attributes.Size()
}

/*
Attribute takes an attribute name and returns the attribute with that name
and true, or nil and false if the schema has no such attribute.
*/
func (s *Schema) Attribute(name string) (*Attribute, bool) {
	a, ok := s.attributes.Get(name)
	if !ok {
		return nil, false
	}
	return a.(*Attribute), true
}

/*
Position takes an attribute name and returns its index in the schema, the
index of its value in the examples described by the schema.
*/
func (s *Schema) Position(name string) (int, bool) {
	i, ok := s.positions[name]
	return i, ok
}

// Names returns the attribute names in schema order.
func (s *Schema) Names() []string {
	result := make([]string, 0, s.attributes.Size())
	for _, k := range s.attributes.Keys() {
		result = append(result, k.(string))
	}
	return result
}

// Attributes returns the attributes in schema order.
func (s *Schema) Attributes() []*Attribute {
	result := make([]*Attribute, 0, s.attributes.Size())
	for _, v := range s.attributes.Values() {
		result = append(result, v.(*Attribute))
	}
	return result
}

/*
AttributeSet returns an AttributeSet with every attribute name in the schema,
in schema order.
*/
func (s *Schema) AttributeSet() AttributeSet {
	return NewAttributeSet(s.Names()...)
}

/*
Validate takes the positional values of an example and returns an error if
their number does not match the number of attributes or if any of them does
not belong to the value set of the attribute at its position.
*/
func (s *Schema) Validate(values []string) error {
	if len(values) != s.Len() {
		return fmt.Errorf("expected %d attribute values, got %d", s.Len(), len(values))
	}
	for i, a := range s.Attributes() {
		if _, err := a.Valid(values[i]); err != nil {
			return err
		}
	}
	return nil
}
