package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	notebook "github.com/koalazub/tree-sitter-notebook"
	"github.com/koalazub/tree-sitter-notebook/internal/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the grammar ABI, query documents, and node-type schema",
	Long: `Runs the consistency checks an editor performs implicitly on load:

  abi          grammar ABI version is within the runtime's supported range
  queries      highlights, injections, and textobjects compile against the grammar
  node-types   the schema parses, validates, and declares the expected kinds`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	lang := notebook.GetLanguage()
	if err := notebook.CheckVersion(lang); err != nil {
		var ve *notebook.VersionError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "abi          FAIL  version %d, supported [%d, %d]\n", ve.Got, ve.Min, ve.Max)
		}
		return err
	}
	fmt.Fprintf(out, "abi          ok    version %d (supported [%d, %d])\n",
		lang.AbiVersion(), uint32(tree_sitter.MIN_COMPATIBLE_LANGUAGE_VERSION), uint32(tree_sitter.LANGUAGE_VERSION))

	queries := []struct {
		name   string
		source string
	}{
		{"highlights", notebook.HighlightsQuery},
		{"injections", notebook.InjectionsQuery},
		{"textobjects", notebook.TextObjectsQuery},
	}
	for _, q := range queries {
		compiled, err := notebook.CompileQuery(lang, q.name, q.source)
		if err != nil {
			fmt.Fprintf(out, "%-12s FAIL  %v\n", q.name, err)
			return err
		}
		fmt.Fprintf(out, "%-12s ok    %d captures\n", q.name, len(compiled.CaptureNames()))
		compiled.Close()
	}

	nodes, err := schema.Parse([]byte(notebook.NodeTypes))
	if err != nil {
		return err
	}
	if err := schema.Validate(nodes); err != nil {
		return err
	}
	for _, required := range []string{"document", "cell", "cell_content"} {
		if _, ok := schema.Lookup(nodes, required); !ok {
			return fmt.Errorf("node-types: missing required kind %q", required)
		}
	}
	fmt.Fprintf(out, "node-types   ok    %d named kinds\n", len(schema.NamedKinds(nodes)))
	return nil
}
