// nbts is the developer tool for the notebook tree-sitter grammar:
// verify the compiled parser, inspect trees and highlight captures, and
// maintain a local cell index for editor pickers.
package main

import (
	"os"

	"github.com/koalazub/tree-sitter-notebook/cmd/nbts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
