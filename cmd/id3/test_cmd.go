package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	metadataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a testing set of examples`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			m, err := config.loadModel(ctx, config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			schema, labels, err := config.schema(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if schema == nil {
				schema, labels = m.Schema, m.Labels
			}
			if err = sameSchema(m.Schema, schema); err != nil {
				fmt.Fprintf(os.Stderr, "metadata does not match the tree: %v\n", err)
				os.Exit(3)
			}
			testingSet, err := config.readSet(ctx, config.dataInput, schema, labels)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testing set with %d examples...", testingSet.Count())
			ev, err := id3.EvaluateAll(m.Root, testingSet.Examples)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			for _, r := range ev.Results {
				config.Logf("%s", describeResult(r))
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, %d errors out of %d examples (%d unclassifiable)\n", ev.SuccessRate(), ev.Errors, ev.Total, ev.Unclassified)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input text, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to test the tree against (defaults to STDIN, interpreted as text)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and labels of the examples (defaults to the ones stored with the tree)")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis location (redis://host:port/db#id) from which the tree to test will be read (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func describeResult(r id3.Result) string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: expected %s, %v", r.Name, r.Expected, r.Err)
	case r.Correct:
		return fmt.Sprintf("%s: %s", r.Name, r.Predicted)
	}
	return fmt.Sprintf("%s: expected %s, predicted %s", r.Name, r.Expected, r.Predicted)
}
