// Package rib implements the three routing information bases spec.md §3
// describes for each Router: Adj-RIB-In (everything learned), Loc-RIB
// (the one best path per prefix), and Adj-RIB-Out (the pending outbound
// delta). This file was transitorykris-kbgp/rib/rib.go, an RFC 4271
// narrative comment block describing exactly these three RIBs with no
// implementation; it is expanded here into the data structure and
// mutation operations the comments describe, adapted from a prose
// description of a general BGP speaker's RIBs to the simplified,
// shortest-AS-path-only model spec.md §4.4 specifies.
package rib

import (
	"github.com/li-ch/savsim/message"
	"github.com/li-ch/savsim/topology"
)

// RIB holds one Router's routing information bases.
type RIB struct {
	// LocalPrefixes is the set of prefixes this Router originates.
	LocalPrefixes map[message.Prefix]bool
	// AdjRibIn maps prefix -> the deduplicated set of AS-paths learned
	// from neighbors, across all interfaces (spec.md I3).
	AdjRibIn map[message.Prefix]*PathSet
	// PrefixOrigins maps prefix -> the union of path[0] across every path
	// in AdjRibIn[prefix] (spec.md I4). Under this repo's Path convention
	// that is each path's LastHop(), the neighbor it was received from
	// (self for a seeded local prefix), not Path.Origin().
	PrefixOrigins map[message.Prefix]map[topology.ASN]bool
	// LocRib maps prefix -> the single best known path (spec.md I2).
	LocRib map[message.Prefix]message.Path
	// AdjRibOut is the delta queued for the next outbound broadcast,
	// cleared after every broadcast (spec.md §4.4 step 3, and REDESIGN
	// FLAG #1 in spec.md §9: it is reassigned wholesale, never merged).
	AdjRibOut map[message.Prefix][]message.Path
}

// New creates an empty RIB.
func New() *RIB {
	return &RIB{
		LocalPrefixes: make(map[message.Prefix]bool),
		AdjRibIn:      make(map[message.Prefix]*PathSet),
		PrefixOrigins: make(map[message.Prefix]map[topology.ASN]bool),
		LocRib:        make(map[message.Prefix]message.Path),
		AdjRibOut:     make(map[message.Prefix][]message.Path),
	}
}

// SeedOrigin installs self as the originator of prefix: LocRib[prefix] =
// [self], AdjRibIn[prefix] = {[self]}, self is recorded as the prefix's
// origin (spec.md I1). Called once per local prefix at Router construction.
func (r *RIB) SeedOrigin(prefix message.Prefix, self topology.ASN) {
	r.LocalPrefixes[prefix] = true
	path := message.Path{self}
	r.LocRib[prefix] = path
	r.addToAdjRibIn(prefix, path)
	r.addOrigin(prefix, self)
}

func (r *RIB) addOrigin(prefix message.Prefix, asn topology.ASN) {
	if r.PrefixOrigins[prefix] == nil {
		r.PrefixOrigins[prefix] = make(map[topology.ASN]bool)
	}
	r.PrefixOrigins[prefix][asn] = true
}

// Origins returns the ASes recorded in PrefixOrigins[prefix], in no
// particular order.
func (r *RIB) Origins(prefix message.Prefix) []topology.ASN {
	out := make([]topology.ASN, 0, len(r.PrefixOrigins[prefix]))
	for asn := range r.PrefixOrigins[prefix] {
		out = append(out, asn)
	}
	return out
}

// addToAdjRibIn adds path to AdjRibIn[prefix] if it isn't already present
// (structural equality, spec.md I3), creating the PathSet if necessary.
// Reports whether path was new.
func (r *RIB) addToAdjRibIn(prefix message.Prefix, path message.Path) bool {
	set, ok := r.AdjRibIn[prefix]
	if !ok {
		set = NewPathSet()
		r.AdjRibIn[prefix] = set
	}
	return set.Add(path)
}

// Delta is the set of newly-learned paths per prefix produced by one
// inbound BGPAnnouncement (spec.md §4.4 step 1's "new-paths delta").
type Delta map[message.Prefix][]message.Path

// Learn processes one inbound prefix -> paths entry: every structurally
// new path is appended to AdjRibIn and prefix_origins gains
// received_path[0] (spec.md §4.4 step 1, I4) — under this repo's Path
// convention that is path.LastHop(), the proximate sender the path was
// just received from, not path.Origin()'s true originator further back
// down the chain.
func (r *RIB) Learn(prefix message.Prefix, receivedPaths []message.Path, delta Delta) {
	for _, path := range receivedPaths {
		if r.addToAdjRibIn(prefix, path) {
			r.addOrigin(prefix, path.LastHop())
			delta[prefix] = append(delta[prefix], path)
		}
	}
}

// SelectBest applies spec.md §4.4 step 2's best-path rule for one prefix
// given the new paths learned for it this message: if the prefix has no
// incumbent, the first new path becomes it; then every new path whose
// length is strictly less than the incumbent's replaces it. Equal-length
// paths never displace the incumbent (REDESIGN FLAG #2, spec.md §9),
// and ties among equal-length candidates are broken by arrival order,
// which newPaths already preserves.
func (r *RIB) SelectBest(prefix message.Prefix, newPaths []message.Path) {
	if len(newPaths) == 0 {
		return
	}
	if _, ok := r.LocRib[prefix]; !ok {
		r.LocRib[prefix] = newPaths[0]
	}
	for _, path := range newPaths {
		if len(path) < len(r.LocRib[prefix]) {
			r.LocRib[prefix] = path
		}
	}
}

// QueueDelta sets AdjRibOut equal to delta (spec.md §4.4 step 3: "out-delta
// = in-delta"), not merged with whatever AdjRibOut already held.
func (r *RIB) QueueDelta(delta Delta) {
	out := make(map[message.Prefix][]message.Path, len(delta))
	for prefix, paths := range delta {
		out[prefix] = paths
	}
	r.AdjRibOut = out
}

// FlushOut clears AdjRibOut after a broadcast (spec.md §4.4 step 3).
func (r *RIB) FlushOut() {
	r.AdjRibOut = make(map[message.Prefix][]message.Path)
}
