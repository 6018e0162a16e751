package router

import (
	"sync"

	"github.com/li-ch/savsim/topology"
)

// Network is the registry of live Routers a message's destination ASN
// resolves through. It replaces the back-pointer the topology graph would
// otherwise need to hold per spec.md §9 REDESIGN FLAG #2 ("use an arena of
// Routers plus indices instead of a back-pointer; the graph holds indices
// only") — the Topology stays a plain ASN graph and Network is the one
// place that maps an ASN to its live Router.
type Network struct {
	mu      sync.RWMutex
	routers map[topology.ASN]*Router
}

// NewNetwork creates an empty Network.
func NewNetwork() *Network {
	return &Network{routers: make(map[topology.ASN]*Router)}
}

// Register installs r under its own ASN, replacing anything registered
// there before.
func (n *Network) Register(r *Router) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routers[r.ASN] = r
}

// Lookup returns the Router registered for asn, if any.
func (n *Network) Lookup(asn topology.ASN) (*Router, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	r, ok := n.routers[asn]
	return r, ok
}
