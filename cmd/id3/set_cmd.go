package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	metadataInput string
	setOutput     string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Convert sets of examples",
		Long:  `Read a set of examples from one store and write it onto another`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			schema, labels, err := config.schema(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			s, err := config.readSet(ctx, config.setInput, schema, labels)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading input set: %v\n", err)
				os.Exit(3)
			}
			err = config.writeSet(ctx, config.setOutput, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input text, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to read (defaults to STDIN, interpreted as text)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and labels of the examples (required unless the input is in text format)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to a text, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to write the examples to (defaults to STDOUT in text format)")
	return cmd
}
