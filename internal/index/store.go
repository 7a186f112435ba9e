// Package index persists extracted notebook cells in a bbolt database
// so editor pickers can list cells across a directory without
// re-parsing every file. One bucket holds JSON-serialized documents
// keyed by path. Writes are transactional — a crash mid-write cannot
// corrupt previously committed data.
package index

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/koalazub/tree-sitter-notebook/internal/cells"
)

var bucketDocuments = []byte("documents")

// Document is one indexed notebook file.
type Document struct {
	Path    string       `json:"path"`
	ModTime time.Time    `json:"mod_time"`
	Size    int64        `json:"size"`
	Cells   []cells.Cell `json:"cells"`
}

// Stats summarizes the index contents.
type Stats struct {
	Documents int
	Cells     int
}

// Store is a bbolt-backed cell index.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the index database at the given path. The 1s
// lock timeout turns a held file lock into an error instead of a hang.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		if isLockTimeout(err) {
			return nil, fmt.Errorf("open index %s: locked by another process (is a watch running?)", path)
		}
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// isLockTimeout returns true if the error chain contains a bbolt lock
// timeout. bbolt reports the string "timeout" when it cannot acquire
// the file lock within the configured deadline.
func isLockTimeout(err error) bool {
	return err != nil && strings.Contains(err.Error(), "timeout")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutDocument stores or replaces one document.
func (s *Store) PutDocument(doc Document) error {
	if doc.Path == "" {
		return fmt.Errorf("empty document path")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", doc.Path, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketDocuments)
		if err != nil {
			return err
		}
		return b.Put([]byte(doc.Path), data)
	})
}

// GetDocument retrieves a document by path. Returns nil, nil when the
// path is not indexed.
func (s *Store) GetDocument(path string) (*Document, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(path)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", path, err)
	}
	return &doc, nil
}

// DeleteDocument removes a document. Idempotent: deleting an unindexed
// path is not an error.
func (s *Store) DeleteDocument(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(path))
	})
}

// Documents returns all indexed documents sorted by path.
func (s *Store) Documents() ([]Document, error) {
	var docs []Document
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var doc Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("unmarshal document %s: %w", k, err)
			}
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// Stats counts indexed documents and cells.
func (s *Store) Stats() (Stats, error) {
	docs, err := s.Documents()
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Documents: len(docs)}
	for _, d := range docs {
		st.Cells += len(d.Cells)
	}
	return st, nil
}
