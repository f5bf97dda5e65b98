package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/tree/json"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput      string
	metadataInput  string
	output         string
	maxConcurrency int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of examples",
		Long:  `Grow a decision tree from a training set of examples with the ID3 algorithm`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			schema, labels, err := config.schema(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := config.readSet(ctx, config.dataInput, schema, labels)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Growing tree from a set with %d examples and %d attributes...", trainingSet.Count(), trainingSet.Schema.Len())
			p := id3.NewPot(trainingSet.Schema, id3.WithMaxConcurrency(config.maxConcurrency), id3.WithLogger(config.Logger()))
			root, err := p.Grow(ctx, trainingSet.Examples)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Done")
			m := &json.Model{Schema: trainingSet.Schema, Labels: trainingSet.Labels, Root: root}
			location, err := config.saveModel(ctx, config.output, m)
			if err != nil {
				fmt.Fprintf(os.Stderr, "saving tree: %v\n", err)
				os.Exit(5)
			}
			if location != config.output {
				fmt.Println(location)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input text, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to grow the tree from (defaults to STDIN, interpreted as text)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and labels of the examples (required unless the input is in text format)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format, or a redis URL to store it on (defaults to STDOUT)")
	cmd.Flags().IntVar(&(config.maxConcurrency), "max-concurrency", id3.DefaultMaxConcurrency, "maximum number of tree nodes to develop at the same time")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.maxConcurrency < 1 {
		return fmt.Errorf("max-concurrency must be at least 1, got %d", gcc.maxConcurrency)
	}
	return nil
}
