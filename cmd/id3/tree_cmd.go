package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
	"github.com/pbanos/id3/tree/render"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a tree",
		Long:  `Show a decision tree along with its attributes, labels and shape`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			m, err := config.loadModel(cmd.Context(), config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = describeModel(os.Stdout, m)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis location (redis://host:port/db#id) from which the tree to show will be read (required)")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func describeModel(w io.Writer, m *json.Model) error {
	for _, a := range m.Schema.Attributes() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", a.Name(), strings.Join(a.Values(), ", ")); err != nil {
			return err
		}
	}
	labels := m.Labels
	if len(labels) == 0 {
		labels = tree.Labels(m.Root)
	}
	if _, err := fmt.Fprintf(w, "labels: %s\n\n", strings.Join(labels, ", ")); err != nil {
		return err
	}
	if err := render.Fprint(w, m.Root); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%v\n", render.Summarize(m.Root))
	return err
}
