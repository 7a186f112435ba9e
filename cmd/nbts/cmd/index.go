package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/koalazub/tree-sitter-notebook/internal/cells"
	"github.com/koalazub/tree-sitter-notebook/internal/index"
)

var (
	indexDB  string
	indexExt string
)

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Index the cells of all notebook files under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexDB, "db", "", "Index database path (default <dir>/.nbts/index.db)")
	indexCmd.Flags().StringVar(&indexExt, "ext", ".nb", "Notebook file extension")
	watchCmd.Flags().StringVar(&indexDB, "db", "", "Index database path (default <dir>/.nbts/index.db)")
	watchCmd.Flags().StringVar(&indexExt, "ext", ".nb", "Notebook file extension")
}

// resolveDir turns the optional positional argument into an absolute
// directory, defaulting to the project root.
func resolveDir(args []string) string {
	dir := projectRoot()
	if len(args) > 0 {
		if filepath.IsAbs(args[0]) {
			dir = args[0]
		} else {
			dir = filepath.Join(dir, args[0])
		}
	}
	return dir
}

// openStore opens the index database for dir, creating .nbts/ if needed.
func openStore(dir string) (*index.Store, error) {
	dbPath := indexDB
	if dbPath == "" {
		dbPath = filepath.Join(dir, ".nbts", "index.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	return index.Open(dbPath)
}

func runIndex(cmd *cobra.Command, args []string) error {
	dir := resolveDir(args)

	lang, err := loadLanguage()
	if err != nil {
		return err
	}

	store, err := openStore(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	indexed := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), indexExt) {
			return nil
		}
		if err := indexFile(store, lang, dir, path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skip %s: %v\n", path, err)
			return nil
		}
		indexed++
		return nil
	})
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d files — %d documents, %d cells\n",
		indexed, stats.Documents, stats.Cells)
	return nil
}

// indexFile parses one notebook file and stores its cells keyed by the
// path relative to root.
func indexFile(store *index.Store, lang *tree_sitter.Language, root, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tree, err := parseNotebook(lang, source)
	if err != nil {
		return err
	}
	defer tree.Close()

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	return store.PutDocument(index.Document{
		Path:    rel,
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Cells:   cells.Extract(tree.RootNode(), source),
	})
}
