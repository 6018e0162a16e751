package rib

import (
	"strconv"
	"strings"

	"github.com/li-ch/savsim/message"
)

// PathSet is a deduplicating, insertion-ordered collection of AS-paths,
// compared by structural equality (spec.md I3). Paths are keyed by a hash
// of the AS sequence rather than compared with a linear scan, per the
// REDESIGN FLAG in spec.md §9 ("the source's quadratic scan is acceptable
// only at small scales").
type PathSet struct {
	byKey map[string]bool
	paths []message.Path
}

// NewPathSet creates an empty PathSet.
func NewPathSet() *PathSet {
	return &PathSet{byKey: make(map[string]bool)}
}

// Add inserts path if no structurally-equal path is already present.
// Reports whether path was newly added.
func (s *PathSet) Add(path message.Path) bool {
	k := pathKey(path)
	if s.byKey[k] {
		return false
	}
	s.byKey[k] = true
	s.paths = append(s.paths, path)
	return true
}

// Contains reports whether a structurally-equal path is already present.
func (s *PathSet) Contains(path message.Path) bool {
	return s.byKey[pathKey(path)]
}

// Paths returns every path in the set, in insertion order. The returned
// slice must not be mutated by the caller.
func (s *PathSet) Paths() []message.Path {
	return s.paths
}

// Len reports the number of distinct paths in the set.
func (s *PathSet) Len() int {
	return len(s.paths)
}

// pathKey hashes an AS-path into a string that two structurally-equal
// paths always share and two structurally-different paths never do (ASN
// values are delimited, so [1, 23] and [12, 3] don't collide).
func pathKey(p message.Path) string {
	var b strings.Builder
	for _, asn := range p {
		b.WriteString(strconv.Itoa(int(asn)))
		b.WriteByte(',')
	}
	return b.String()
}
