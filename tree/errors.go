package tree

import (
	"errors"
	"fmt"
)

var (
	/*
	   ErrUnclassifiable is matched by the errors returned when an example
	   reaches a decision node that has no branch for the example's value,
	   that is, a value that was not seen on the training examples reaching
	   the node.
	*/
	ErrUnclassifiable = errors.New("unclassifiable example")
	/*
	   ErrMalformedExample is returned (wrapped) when an example has no value
	   for an attribute a decision node asks about.
	*/
	ErrMalformedExample = errors.New("malformed example")
)

/*
UnclassifiableError describes the decision node an example could not get
past: the attribute it splits on and the example's value for it.
*/
type UnclassifiableError struct {
	Example   string
	Attribute string
	Value     string
}

func (ue *UnclassifiableError) Error() string {
	return fmt.Sprintf("%v %s: no branch for %s = %q", ErrUnclassifiable, ue.Example, ue.Attribute, ue.Value)
}

// Is makes errors.Is(err, ErrUnclassifiable) hold for any *UnclassifiableError.
func (ue *UnclassifiableError) Is(target error) bool {
	return target == ErrUnclassifiable
}
