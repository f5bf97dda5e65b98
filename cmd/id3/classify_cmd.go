package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/inputexample"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput string
	values    []string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an example answering questions",
		Long:  `Use a tree to classify an example, asking for the values of the attributes not given with the value flag`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			preset, err := parseValues(config.values)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			m, err := config.loadModel(cmd.Context(), config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			e, err := inputexample.Read(os.Stdin, m.Schema, &inputexample.WriterValueRequester{W: os.Stdout}, preset)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading example: %v\n", err)
				os.Exit(3)
			}
			err = classify(os.Stdout, m.Root, e)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis location (redis://host:port/db#id) from which the tree will be read (required)")
	cmd.Flags().StringArrayVar(&(config.values), "value", nil, "value of an attribute of the example as attribute=value (can be repeated)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

// parseValues turns attribute=value pairs into a map.
func parseValues(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, p := range pairs {
		i := strings.Index(p, "=")
		if i < 1 {
			return nil, fmt.Errorf("invalid value %q: expected attribute=value", p)
		}
		name := p[:i]
		if _, ok := result[name]; ok {
			return nil, fmt.Errorf("value for attribute %s given more than once", name)
		}
		result[name] = p[i+1:]
	}
	return result, nil
}

/*
classify writes the label the tree predicts for the example, or returns an
error if the tree cannot classify it.
*/
func classify(w io.Writer, root tree.Node, e *dataset.Example) error {
	label, err := tree.Classify(root, e)
	if err != nil {
		return fmt.Errorf("classifying %v: %w", e.Values(), err)
	}
	_, err = fmt.Fprintf(w, "Predicted label is %s\n", label)
	return err
}
