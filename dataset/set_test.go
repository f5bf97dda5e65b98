package dataset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pbanos/id3/feature"
)

func testSchema() *feature.Schema {
	return feature.MustSchema(
		feature.NewAttribute("Weather", "Sunny", "Rainy"),
		feature.NewAttribute("Humidity", "High", "Low"),
	)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []string
		examples []*Example
		valid    bool
	}{
		{"valid", []string{"Play", "NoPlay"}, []*Example{NewExample("e1", "Play", "Sunny", "Low")}, true},
		{"any label", nil, []*Example{NewExample("e1", "Maybe", "Sunny", "Low")}, true},
		{"empty", nil, nil, true},
		{"unknown label", []string{"Play"}, []*Example{NewExample("e1", "Maybe", "Sunny", "Low")}, false},
		{"unknown value", nil, []*Example{NewExample("e1", "Play", "Cloudy", "Low")}, false},
		{"short", nil, []*Example{NewExample("e1", "Play", "Sunny")}, false},
		{"nil example", nil, []*Example{nil}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(testSchema(), tc.labels, tc.examples)
			if tc.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if s.Count() != len(tc.examples) {
					t.Errorf("expected %d examples, got %d", len(tc.examples), s.Count())
				}
				return
			}
			if !errors.Is(err, ErrInvalidExample) {
				t.Errorf("expected ErrInvalidExample, got %v", err)
			}
		})
	}
}

func TestExampleIsImmutable(t *testing.T) {
	values := []string{"Sunny", "Low"}
	e := NewExample("e1", "Play", values...)
	values[0] = "Rainy"
	e.Values()[1] = "High"
	if !reflect.DeepEqual(e.Values(), []string{"Sunny", "Low"}) {
		t.Errorf("expected example values to be unchanged, got %v", e.Values())
	}
	if _, ok := e.Value(2); ok {
		t.Errorf("expected no value out of range")
	}
	if e.String() != "e1(Play)[Sunny Low]" {
		t.Errorf("unexpected string %s", e)
	}
}

func TestCountLabels(t *testing.T) {
	examples := []*Example{
		NewExample("e1", "b", "Sunny", "Low"),
		NewExample("e2", "a", "Sunny", "Low"),
		NewExample("e3", "a", "Sunny", "Low"),
		NewExample("e4", "c", "Sunny", "Low"),
		NewExample("e5", "b", "Sunny", "Low"),
	}
	expected := []LabelCount{{"b", 2}, {"a", 2}, {"c", 1}}
	if got := CountLabels(examples); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if got := CountLabels(nil); len(got) != 0 {
		t.Errorf("expected no counts for no examples, got %v", got)
	}
}

func TestSubsetWith(t *testing.T) {
	examples := []*Example{
		NewExample("e1", "Play", "Sunny", "Low"),
		NewExample("e2", "NoPlay", "Rainy", "High"),
		NewExample("e3", "Play", "Sunny", "High"),
	}
	c, err := feature.NewCriterion(testSchema(), "Weather", "Sunny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := SubsetWith(examples, c)
	if len(got) != 2 || got[0] != examples[0] || got[1] != examples[2] {
		t.Errorf("expected e1 and e3, got %v", got)
	}
}
