package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/koalazub/tree-sitter-notebook/internal/cells"
	"github.com/koalazub/tree-sitter-notebook/internal/grammar"
	"github.com/koalazub/tree-sitter-notebook/internal/injection"
)

var cellsResolve bool

var cellsCmd = &cobra.Command{
	Use:   "cells <file>",
	Short: "List the cells of a notebook file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCells,
}

func init() {
	cellsCmd.Flags().BoolVarP(&cellsResolve, "resolve", "r", false,
		"Check whether an injection grammar is available for each cell")
}

func runCells(cmd *cobra.Command, args []string) error {
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

	extracted := cells.Extract(tree.RootNode(), source)

	var registry *injection.Registry
	if cellsResolve {
		registry = injection.NewRegistry()
		registry.SetLoader(grammar.NewLoader(grammar.DefaultSearchPaths(projectRoot())))
	}

	out := cmd.OutOrStdout()
	for i, cell := range extracted {
		language := cell.Language
		if language == "" {
			language = cells.DefaultLanguage + " (default)"
		}

		status := ""
		if registry != nil {
			if registry.Has(cell.Language) {
				status = "  [grammar ok]"
			} else {
				status = "  [no grammar]"
			}
		}

		fmt.Fprintf(out, "%3d  %4d-%-4d %-20s%s%s\n",
			i+1, cell.StartLine, cell.EndLine, language, formatAttrs(cell.Attrs), status)
	}
	fmt.Fprintf(out, "\n%d cells\n", len(extracted))
	return nil
}

// formatAttrs renders header attributes as key=value pairs in key order.
func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if attrs[k] == "" {
			parts = append(parts, k)
			continue
		}
		parts = append(parts, k+"="+attrs[k])
	}
	return strings.Join(parts, " ")
}
