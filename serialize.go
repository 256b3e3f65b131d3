// serialize.go
// This file persists a built DAGSearcher as a single opaque binary blob and
// reads it back into an identical structure. There is no versioning in the
// on-disk form; a dictionary change means a rebuild, not a migration.
//
// The teacher dictionary (dawg.go) hand-rolls its own binary layout with
// encoding/binary rather than reaching for a third-party codec; we follow
// that precedent and use the standard library's gob encoder instead of
// introducing a serialization dependency the rest of the module has no
// other use for.

package wordscapes

import (
	"encoding/gob"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// dagNodeRecord is the gob-visible shape of a dagNode; dagNode itself keeps
// unexported fields, so serialization goes through this twin.
type dagNodeRecord struct {
	Multiset Multiset
	Words    []Word
	Children []int
}

// Serialize writes d as a single opaque binary blob to w.
func (d *DAGSearcher) Serialize(w io.Writer) error {
	records := make([]dagNodeRecord, len(d.nodes))
	for i, n := range d.nodes {
		records[i] = dagNodeRecord{Multiset: n.multiset, Words: n.words, Children: n.children}
	}
	if err := gob.NewEncoder(w).Encode(records); err != nil {
		return fmt.Errorf("serializing DAG: %w", err)
	}
	return nil
}

// DeserializeDAG reads a blob written by Serialize and rebuilds an
// equivalent DAGSearcher, including a fresh lookup cache.
func DeserializeDAG(r io.Reader) (*DAGSearcher, error) {
	var records []dagNodeRecord
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("deserializing DAG: %w", err)
	}

	nodes := make([]dagNode, len(records))
	for i, rec := range records {
		nodes[i] = dagNode{multiset: rec.Multiset, words: rec.Words, children: rec.Children}
	}

	d := &DAGSearcher{nodes: nodes}
	d.cache, _ = lru.NewLRU(lookupCacheSize, nil)
	return d, nil
}
