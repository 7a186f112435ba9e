package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a notebook file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	lang, err := loadLanguage()
	if err != nil {
		return err
	}

	tree, err := parseNotebook(lang, source)
	if err != nil {
		return err
	}
	defer tree.Close()

	fmt.Fprintln(cmd.OutOrStdout(), tree.RootNode().ToSexp())
	return nil
}
