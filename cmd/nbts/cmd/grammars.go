package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/koalazub/tree-sitter-notebook/internal/grammar"
	"github.com/koalazub/tree-sitter-notebook/internal/injection"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List available injection grammars",
	Long: `Lists the grammars usable for cell injection: compiled-in grammars and
shared libraries installed under .nbts/grammars (project) or
~/.nbts/grammars (global). Install extra grammars by building them:

  cc -shared -fPIC -o ~/.nbts/grammars/<lang>` + grammar.LibExtension() + ` src/parser.c [src/scanner.c]`,
	RunE: runGrammars,
}

func runGrammars(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	registry := injection.NewRegistry()
	loader := grammar.NewLoader(grammar.DefaultSearchPaths(projectRoot()))

	fmt.Fprintln(out, "Compiled-in:")
	for _, name := range registry.Builtin() {
		fmt.Fprintf(out, "  B %s\n", name)
	}

	installed := loader.Installed()
	if len(installed) > 0 {
		fmt.Fprintln(out, "\nInstalled:")
		for _, name := range installed {
			fmt.Fprintf(out, "  D %-14s %s\n", name, loader.Path(name))
		}
	}

	fmt.Fprintln(out, "\nB = built-in (compiled)  D = dynamic (shared library)")
	fmt.Fprintln(out, "Search paths:")
	for _, p := range loader.SearchPaths() {
		marker := "  "
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			marker = "* "
		}
		fmt.Fprintf(out, "  %s%s\n", marker, p)
	}
	return nil
}
