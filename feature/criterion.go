package feature

import "fmt"

/*
Sample is an interface for something that can satisfy a Criterion.

Its Value method returns the value at the given attribute position and a
boolean that is false when the sample has no value at that position.
*/
type Sample interface {
	Value(position int) (string, bool)
}

/*
Criterion represents a constraint on an attribute: the value it must take.
Each branch of a decision node corresponds to one criterion on the
node's attribute.
*/
type Criterion struct {
	attribute *Attribute
	position  int
	value     string
}

/*
NewCriterion takes a schema, an attribute name and a value and returns the
criterion constraining that attribute to that value, or an error if the
schema has no such attribute or the value does not belong to it.
*/
func NewCriterion(s *Schema, attribute, value string) (*Criterion, error) {
	a, ok := s.Attribute(attribute)
	if !ok {
		return nil, fmt.Errorf("building criterion: unknown attribute %q", attribute)
	}
	if _, err := a.Valid(value); err != nil {
		return nil, fmt.Errorf("building criterion: %w", err)
	}
	position, _ := s.Position(attribute)
	return &Criterion{a, position, value}, nil
}

/*
Attribute returns the attribute to which the constraint applies.
*/
func (c *Criterion) Attribute() *Attribute {
	return c.attribute
}

// Position returns the schema position of the constrained attribute.
func (c *Criterion) Position() int {
	return c.position
}

// Value returns the value the attribute is constrained to.
func (c *Criterion) Value() string {
	return c.value
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion. Specifically, it returns false if the sample does
not define a value for the attribute, and whether the value equals the one on the
criterion otherwise.
*/
func (c *Criterion) SatisfiedBy(s Sample) bool {
	v, ok := s.Value(c.position)
	if !ok {
		return false
	}
	return v == c.value
}

func (c *Criterion) String() string {
	return fmt.Sprintf("%s is %s", c.attribute.Name(), c.value)
}
