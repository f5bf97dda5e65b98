package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose       bool
	metadataInput string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cliParser().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "id3 [training set] [testing set]",
		Short: "id3 is a tool to induce decision trees",
		Long: `A tool to induce decision trees from categorical examples with the ID3 algorithm, test them and use them to classify examples.

Given a training set and a testing set, it induces a tree from the training set, prints it and reports how it classifies the examples in the testing set.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				cmd.Help()
				return
			}
			err := config.run(cmd.Context(), os.Stdout, args[0], args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress to STDERR")
	rootCmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and labels of the sets (required unless both sets are in text format)")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		testCmd(config),
		classifyCmd(config),
		treeCmd(config),
		setCmd(config),
	)
	return rootCmd
}
