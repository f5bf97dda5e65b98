package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/tree/render"
)

/*
run induces a tree from the training set, prints it, and classifies every
example in the testing set with it, printing each result and the number of
errors.
*/
func (rcc *rootCmdConfig) run(ctx context.Context, w io.Writer, trainingInput, testingInput string) error {
	schema, labels, err := rcc.schema(rcc.metadataInput)
	if err != nil {
		return err
	}
	training, err := rcc.readSet(ctx, trainingInput, schema, labels)
	if err != nil {
		return fmt.Errorf("reading training set: %w", err)
	}
	testSet, err := rcc.readSet(ctx, testingInput, training.Schema, training.Labels)
	if err != nil {
		return fmt.Errorf("reading testing set: %w", err)
	}
	root, err := id3.Induce(training.Examples, training.Schema.AttributeSet(), training.Schema)
	if err != nil {
		return err
	}
	if err = render.Fprint(w, root); err != nil {
		return err
	}
	ev, err := id3.EvaluateAll(root, testSet.Examples)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, r := range ev.Results {
		fmt.Fprintln(w, describeResult(r))
	}
	_, err = fmt.Fprintf(w, "%d/%d errors\n", ev.Errors, ev.Total)
	return err
}
