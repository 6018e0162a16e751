package router

import "github.com/li-ch/savsim/topology"

// Relationship is the business relationship a Router has with one of its
// neighbors, derived from the topology edge's link_type at construction
// (spec.md §4.3).
type Relationship int

const (
	// Customer: the neighbor is our customer (we hold a p2c edge to it).
	Customer Relationship = iota
	// Provider: the neighbor is our provider (we hold a c2p edge to it).
	Provider
	// Peer: the neighbor is our peer (we hold a p2p edge to it).
	Peer
)

// String implements fmt.Stringer.
func (r Relationship) String() string {
	switch r {
	case Customer:
		return "customer"
	case Provider:
		return "provider"
	case Peer:
		return "peer"
	default:
		return "unknown"
	}
}

// relationshipFor maps a topology link_type, as seen from the edge's
// source AS, to the Relationship spec.md §4.3 assigns:
//
//	c2p (edge from self to neighbor) -> neighbor is a provider
//	p2c (edge from self to neighbor) -> neighbor is a customer
//	p2p                              -> neighbor is a peer
func relationshipFor(link topology.LinkType) (Relationship, bool) {
	switch link {
	case topology.C2P:
		return Provider, true
	case topology.P2C:
		return Customer, true
	case topology.P2P:
		return Peer, true
	default:
		return 0, false
	}
}

// Neighbor is one entry in a Router's neighbor table (spec.md §3 "Neighbor
// record").
type Neighbor struct {
	ASN          topology.ASN
	Relationship Relationship
	Interface    int
	Latency      float64
}
