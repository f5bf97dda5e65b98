package feature

import (
	"errors"
	"reflect"
	"testing"
)

func TestAttributeValues(t *testing.T) {
	a := NewAttribute("Humidity", "High", "Medium", "High", "Low")
	if !reflect.DeepEqual(a.Values(), []string{"High", "Medium", "Low"}) {
		t.Errorf("expected values in declaration order without repetitions, got %v", a.Values())
	}
	if a.Len() != 3 {
		t.Errorf("expected 3 values, got %d", a.Len())
	}
	if ok, err := a.Valid("Medium"); !ok || err != nil {
		t.Errorf("expected Medium to be valid, got %v %v", ok, err)
	}
	if ok, err := a.Valid("Dry"); ok || !errors.Is(err, ErrUnknownValue) {
		t.Errorf("expected Dry to be invalid with ErrUnknownValue, got %v %v", ok, err)
	}
}

func TestNewSchema(t *testing.T) {
	testCases := []struct {
		name       string
		attributes []*Attribute
		names      []string
		err        error
	}{
		{
			name:       "keeps order",
			attributes: []*Attribute{NewAttribute("B", "b"), NewAttribute("A", "a"), NewAttribute("C", "c")},
			names:      []string{"B", "A", "C"},
		},
		{
			name:       "empty",
			attributes: nil,
			names:      []string{},
		},
		{
			name:       "duplicate",
			attributes: []*Attribute{NewAttribute("A", "a"), NewAttribute("A", "b")},
			err:        ErrDuplicateAttribute,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSchema(tc.attributes...)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(s.Names(), tc.names) {
				t.Errorf("expected names %v, got %v", tc.names, s.Names())
			}
			for i, n := range tc.names {
				if p, ok := s.Position(n); !ok || p != i {
					t.Errorf("expected %s at position %d, got %d %v", n, i, p, ok)
				}
			}
		})
	}
}

func TestSchemaValidate(t *testing.T) {
	s := MustSchema(NewAttribute("Weather", "Sunny", "Rainy"), NewAttribute("Humidity", "High", "Low"))
	testCases := []struct {
		values []string
		valid  bool
	}{
		{[]string{"Sunny", "Low"}, true},
		{[]string{"Rainy", "High"}, true},
		{[]string{"Low", "Sunny"}, false},
		{[]string{"Sunny"}, false},
		{[]string{"Sunny", "Low", "High"}, false},
		{[]string{"Cloudy", "Low"}, false},
	}
	for _, tc := range testCases {
		err := s.Validate(tc.values)
		if (err == nil) != tc.valid {
			t.Errorf("expected valid=%v for %v, got error %v", tc.valid, tc.values, err)
		}
	}
}

func TestAttributeSetWithout(t *testing.T) {
	original := NewAttributeSet("A", "B", "C")
	without := original.Without("B")
	if !reflect.DeepEqual(without.Names(), []string{"A", "C"}) {
		t.Errorf("expected {A, C}, got %v", without)
	}
	if !reflect.DeepEqual(original.Names(), []string{"A", "B", "C"}) {
		t.Errorf("expected original set untouched, got %v", original)
	}
	if !without.Without("A").Without("C").Empty() {
		t.Errorf("expected empty set after removing every name")
	}
	if s := original.Without("Z"); s.Len() != 3 {
		t.Errorf("expected removing an absent name to keep 3 names, got %v", s)
	}
}

func TestAttributeSetZeroValue(t *testing.T) {
	var s AttributeSet
	if !s.Empty() || s.Contains("A") || s.Names() != nil || s.String() != "{}" {
		t.Errorf("expected zero value to behave as an empty set, got %v", s)
	}
	if s.Without("A").Len() != 0 {
		t.Errorf("expected Without on empty set to be empty")
	}
}

type sample []string

func (s sample) Value(position int) (string, bool) {
	if position < 0 || position >= len(s) {
		return "", false
	}
	return s[position], true
}

func TestCriterion(t *testing.T) {
	s := MustSchema(NewAttribute("Weather", "Sunny", "Rainy"), NewAttribute("Humidity", "High", "Low"))
	c, err := NewCriterion(s, "Humidity", "Low")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Position() != 1 || c.String() != "Humidity is Low" {
		t.Errorf("unexpected criterion %v at position %d", c, c.Position())
	}
	if !c.SatisfiedBy(sample{"Sunny", "Low"}) {
		t.Errorf("expected criterion satisfied by Sunny Low")
	}
	if c.SatisfiedBy(sample{"Sunny", "High"}) || c.SatisfiedBy(sample{"Sunny"}) {
		t.Errorf("expected criterion not satisfied by High or a missing value")
	}
	if _, err := NewCriterion(s, "Wind", "Strong"); err == nil {
		t.Errorf("expected error for unknown attribute")
	}
	if _, err := NewCriterion(s, "Humidity", "Medium"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("expected ErrUnknownValue, got %v", err)
	}
}
