// Package sav implements the SAV (Source Address Validation) allowlist
// engine: spec.md §4.5's EFP-uRPF Method A (RFC 8704) over a Router's
// RIBs, plus dispatch for the other SAVMechanism enum values, which are
// reserved and have no operational behavior (spec.md §6, §7).
//
// Grounded on original_source/router.py's EFP_uRPF_A method — the sole
// source for this algorithm, as no repo in the retrieval pack implements
// RFC 8704 — and shaped as a stateless function over RIB data in the
// style of transitorykris-kbgp/speaker/policy.go's Policer interface.
package sav

import (
	"github.com/li-ch/savsim/message"
	"github.com/li-ch/savsim/topology"
)

// Interface is the small non-negative interface index spec.md §3 assigns
// per neighbor.
type Interface int

// Allowlist maps a customer-facing interface to the set of prefixes
// permitted as source addresses on it. It only ever grows once a prefix is
// added to an interface (spec.md §4.5 "monotonically non-shrinking").
type Allowlist map[Interface]map[message.Prefix]bool

// New creates an empty Allowlist.
func New() Allowlist {
	return make(Allowlist)
}

// Prefixes returns the prefixes allowed on iface, or nil if none.
func (a Allowlist) Prefixes(iface Interface) map[message.Prefix]bool {
	return a[iface]
}

// UnionFrom merges every interface -> prefix-set pair of fresh into a,
// adding but never removing entries, so repeated calls across a run can
// only grow a (spec.md §4.5 edge cases, §9 REDESIGN FLAG #4).
func (a Allowlist) UnionFrom(fresh Allowlist) {
	for iface, prefixes := range fresh {
		dst, ok := a[iface]
		if !ok {
			dst = make(map[message.Prefix]bool, len(prefixes))
			a[iface] = dst
		}
		for p := range prefixes {
			dst[p] = true
		}
	}
}

// unionPrefixSet adds every prefix in src into dst[iface], creating the
// inner map on first use.
func unionPrefixSet(dst Allowlist, iface Interface, src map[message.Prefix]bool) {
	m, ok := dst[iface]
	if !ok {
		m = make(map[message.Prefix]bool, len(src))
		dst[iface] = m
	}
	for p := range src {
		m[p] = true
	}
}

// asnSet and prefixSet are small local aliases used by the algorithm in
// efpurpf.go to keep that file's signatures readable.
type asnSet = map[topology.ASN]bool
type prefixSet = map[message.Prefix]bool
