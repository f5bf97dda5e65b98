package id3

import (
	"errors"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

/*
Result holds the outcome of classifying one example: its name, its known
label, the predicted label and whether both match. Err is set, and Predicted
is empty, when the tree could not classify the example.
*/
type Result struct {
	Name      string
	Expected  string
	Predicted string
	Correct   bool
	Err       error
}

/*
Evaluation holds the results of classifying a sequence of examples, in the
order of the examples, together with the number of them that were not
classified correctly (Errors), the number of them that could not be
classified at all (Unclassified, a subset of Errors) and their Total.
*/
type Evaluation struct {
	Results      []Result
	Errors       int
	Unclassified int
	Total        int
}

/*
ErrorRate returns the fraction of examples that were not classified
correctly, 0 for an evaluation without examples.
*/
func (ev *Evaluation) ErrorRate() float64 {
	if ev.Total == 0 {
		return 0.0
	}
	return float64(ev.Errors) / float64(ev.Total)
}

/*
SuccessRate returns the fraction of examples that were classified correctly.
*/
func (ev *Evaluation) SuccessRate() float64 {
	if ev.Total == 0 {
		return 0.0
	}
	return 1.0 - ev.ErrorRate()
}

func (ev *Evaluation) String() string {
	return fmt.Sprintf("%d/%d errors (%d unclassifiable)", ev.Errors, ev.Total, ev.Unclassified)
}

/*
EvaluateAll takes the root of a tree and a slice of examples and classifies
every example with the tree, comparing the prediction with the example's
label. Examples the tree cannot classify are recorded as errors in the
evaluation without interrupting it; any other classification error aborts
the evaluation and is returned.
*/
func EvaluateAll(root tree.Node, examples []*dataset.Example) (*Evaluation, error) {
	ev := &Evaluation{Results: make([]Result, 0, len(examples)), Total: len(examples)}
	for _, e := range examples {
		predicted, err := tree.Classify(root, e)
		if err != nil && !errors.Is(err, tree.ErrUnclassifiable) {
			return nil, fmt.Errorf("evaluating tree: %w", err)
		}
		r := Result{Name: e.Name(), Expected: e.Label()}
		switch {
		case err != nil:
			r.Err = err
			ev.Unclassified++
		default:
			r.Predicted = predicted
			r.Correct = predicted == e.Label()
		}
		if !r.Correct {
			ev.Errors++
		}
		ev.Results = append(ev.Results, r)
	}
	return ev, nil
}
