package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "nbts",
	Short:         "nbts — notebook grammar tooling",
	Long:          "Inspect and index notebook cell files using the compiled tree-sitter grammar.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(cellsCmd)
	rootCmd.AddCommand(grammarsCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(watchCmd)
}
