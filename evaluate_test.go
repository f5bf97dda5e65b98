package id3

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

func TestEvaluateAll(t *testing.T) {
	schema := feature.MustSchema(
		feature.NewAttribute("Weather", "Sunny", "Rainy"),
		feature.NewAttribute("Humidity", "High", "Medium", "Low"),
	)
	training := []*dataset.Example{
		dataset.NewExample("e1", "Play", "Sunny", "Low"),
		dataset.NewExample("e2", "NoPlay", "Sunny", "High"),
		dataset.NewExample("e3", "Play", "Rainy", "Low"),
	}
	root, err := Induce(training, schema.AttributeSet(), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []*dataset.Example{
		dataset.NewExample("t1", "Play", "Rainy", "Low"),
		dataset.NewExample("t2", "Play", "Rainy", "High"),
		dataset.NewExample("t3", "Play", "Sunny", "Medium"),
		dataset.NewExample("t4", "NoPlay", "Sunny", "High"),
	}
	ev, err := EvaluateAll(root, tests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var names []string
	for _, r := range ev.Results {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, []string{"t1", "t2", "t3", "t4"}) {
		t.Errorf("expected results in input order, got %v", names)
	}
	if ev.Total != 4 || ev.Errors != 2 || ev.Unclassified != 1 {
		t.Errorf("expected 2/4 errors with 1 unclassifiable, got %v", ev)
	}
	if math.Abs(ev.ErrorRate()-0.5) > tolerance {
		t.Errorf("expected error rate 0.5, got %f", ev.ErrorRate())
	}
	r := ev.Results[1]
	if r.Correct || r.Predicted != "NoPlay" || r.Err != nil {
		t.Errorf("expected t2 misclassified as NoPlay, got %+v", r)
	}
	r = ev.Results[2]
	if r.Correct || !errors.Is(r.Err, tree.ErrUnclassifiable) {
		t.Errorf("expected t3 unclassifiable, got %+v", r)
	}
}

func TestEvaluateAllEmpty(t *testing.T) {
	ev, err := EvaluateAll(&tree.Leaf{Label: "a"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Total != 0 || ev.ErrorRate() != 0 || len(ev.Results) != 0 {
		t.Errorf("expected empty evaluation, got %v", ev)
	}
}

func TestEvaluateAllAbortsOnMalformedExample(t *testing.T) {
	root := &tree.Decision{Attribute: "Humidity", Position: 1, Branches: []*tree.Branch{
		{Value: "Low", Node: &tree.Leaf{Label: "Play"}},
	}}
	_, err := EvaluateAll(root, []*dataset.Example{dataset.NewExample("short", "Play", "Sunny")})
	if !errors.Is(err, tree.ErrMalformedExample) {
		t.Errorf("expected ErrMalformedExample, got %v", err)
	}
}

func TestEvaluateAllAbortsOnNilExample(t *testing.T) {
	_, err := EvaluateAll(&tree.Leaf{Label: "a"}, []*dataset.Example{nil})
	if !errors.Is(err, tree.ErrMalformedExample) {
		t.Errorf("expected ErrMalformedExample, got %v", err)
	}
}
