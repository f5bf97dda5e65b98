package feature

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

/*
AttributeSet is an ordered set of attribute names, such as the attributes
still available to split on at some node of a tree being induced.

AttributeSet values are immutable: Without returns a new set and leaves the
receiver untouched, so sets can be handed to sibling branches without them
affecting each other. The zero value is an empty set.
*/
type AttributeSet struct {
	names *linkedhashset.Set
}

/*
NewAttributeSet takes a sequence of attribute names and returns a set with
them, keeping the order of their first occurrence.
*/
func NewAttributeSet(names ...string) AttributeSet {
	set := linkedhashset.New()
	for _, n := range names {
		set.Add(n)
	}
	return AttributeSet{set}
}

// Len returns the number of names in the set.
func (as AttributeSet) Len() int {
	if as.names == nil {
		return 0
	}
	return as.names.Size()
}

// Empty reports whether the set has no names.
func (as AttributeSet) Empty() bool {
	return as.Len() == 0
}

// Contains reports whether the given name is in the set.
func (as AttributeSet) Contains(name string) bool {
	return as.names != nil && as.names.Contains(name)
}

// Names returns the names in the set in order.
func (as AttributeSet) Names() []string {
	if as.names == nil {
		return nil
	}
	result := make([]string, 0, as.names.Size())
	for _, n := range as.names.Values() {
		result = append(result, n.(string))
	}
	return result
}

/*
Without takes a name and returns a new set with the names in this one
except the given name.
*/
func (as AttributeSet) Without(name string) AttributeSet {
	set := linkedhashset.New()
	for _, n := range as.Names() {
		if n != name {
			set.Add(n)
		}
	}
	return AttributeSet{set}
}

func (as AttributeSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(as.Names(), ", "))
}
