package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	notebook "github.com/koalazub/tree-sitter-notebook"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print highlight captures for a notebook file",
	Long:  "Runs the embedded highlights query and prints one line per capture: line:col, capture name, matched text.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func runHighlight(cmd *cobra.Command, args []string) error {
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

	query, err := notebook.CompileQuery(lang, "highlights", notebook.HighlightsQuery)
	if err != nil {
		return err
	}
	defer query.Close()

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	out := cmd.OutOrStdout()
	names := query.CaptureNames()
	matches := cursor.Matches(query, tree.RootNode(), source)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for _, capture := range m.Captures {
			start := capture.Node.StartPosition()
			fmt.Fprintf(out, "%d:%d\t%-24s %s\n",
				start.Row+1, start.Column+1, names[capture.Index],
				firstLine(capture.Node.Utf8Text(source)))
		}
	}
	return nil
}
