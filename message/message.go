// Package message defines the two wire-shaped (but never actually
// serialized — spec.md §6 calls this "in-process; not serialized") message
// variants the simulator passes between routers, and the Prefix/Path
// types they carry.
//
// Split into one file per message kind, following the layout of
// transitorykris-kbgp/message/ (open.go, keepalive.go, notification.go)
// even though the message catalog itself is rewritten from real BGP
// session messages to the two variants original_source/message.py defines.
package message

import "github.com/li-ch/savsim/topology"

// Prefix is an opaque address-block label. Prefixes are compared only by
// string equality — no CIDR parsing, no subsumption, no arithmetic
// (spec.md Non-goals).
type Prefix string

// Path is a non-empty ordered AS-path, built the way a real BGP AS_PATH is:
// each forwarding AS prepends itself to the front, so the first element is
// the most recently added hop (the one a receiver heard it from) and the
// last element is the originating AS. This is the opposite of the literal
// "first element is the origin" wording one early draft of this system's
// spec used; it is fixed to match the original simulator's own
// new_path = [self, *as_path] construction and its worked examples, both
// of which are unambiguous about the direction.
type Path []topology.ASN

// Origin returns the AS that first announced the path: its last element.
func (p Path) Origin() topology.ASN {
	return p[len(p)-1]
}

// LastHop returns the most recently added hop: its first element.
func (p Path) LastHop() topology.ASN {
	return p[0]
}

// Contains reports whether asn appears anywhere in the path.
func (p Path) Contains(asn topology.ASN) bool {
	for _, a := range p {
		if a == asn {
			return true
		}
	}
	return false
}

// Equal reports whether p and other are the same sequence of ASes
// (structural equality, spec.md §3).
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Prepend returns a new path with asn placed at the front: asn followed by
// p's elements.
func (p Path) Prepend(asn topology.ASN) Path {
	c := make(Path, 0, len(p)+1)
	c = append(c, asn)
	c = append(c, p...)
	return c
}
