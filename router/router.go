// Package router implements the per-AS BGP-like routing engine: spec.md
// §4.3's initialization, §4.4's inbound-announcement handling and
// broadcast, and the glue that drives §4.5's SAV recomputation after every
// update.
//
// Grounded on transitorykris-kbgp/speaker/speaker.go and
// transitorykris-kbgp/speaker/peer.go for the shape of a Peer/Router pair
// driving Policer-style export filtering (speaker/policy.go's Policer
// interface, reworked here as a plain per-neighbor prefix-set check since
// spec.md's export_policy is static data, not a pluggable interface), and
// on transitorykris-kbgp/rib/rib.go for the three-RIB state this Router
// owns via the rib package.
package router

import (
	"fmt"
	"log"

	"github.com/li-ch/savsim/counter"
	"github.com/li-ch/savsim/message"
	"github.com/li-ch/savsim/rib"
	"github.com/li-ch/savsim/sav"
	"github.com/li-ch/savsim/scheduler"
	"github.com/li-ch/savsim/topology"
)

// Router is one AS's full routing engine: RIBs, neighbor/interface table,
// export policy, and SAV allowlist (spec.md §3 "Per-Router state").
type Router struct {
	ASN topology.ASN

	neighbors   []Neighbor // interface-index order, spec.md §4.3
	neighborOf  map[topology.ASN]Neighbor
	exportPolicy map[topology.ASN]map[message.Prefix]bool
	customers   map[topology.ASN]sav.Interface

	RIB          *rib.RIB
	SAVAllowlist sav.Allowlist
	savMechanism message.SAVMechanism
	mailbox      *scheduler.Mailbox[message.BGPAnnouncement]

	// TotalSent counts every BGPAnnouncement this Router has ever
	// transmitted, across its whole lifetime (a SPEC_FULL.md
	// supplemented metric; spec.md itself does not name it but a
	// Router's own message count is a natural readout for the driver to
	// report alongside RIBs and allowlists).
	TotalSent int

	initDelay scheduler.Time
	counter   *counter.Counter
	sched     *scheduler.Scheduler
	network   *Network
}

// NewRouter constructs a Router from cfg. It assigns interfaces from topo's
// outgoing edges for cfg.ASN in encounter order (spec.md §4.3), seeds its
// RIBs from cfg.LocalPrefixes, and registers itself in network. It
// schedules nothing; Init schedules the initial full broadcast.
func NewRouter(cfg Config, topo *topology.Topology, sched *scheduler.Scheduler, network *Network) *Router {
	r := &Router{
		ASN:          cfg.ASN,
		neighborOf:   make(map[topology.ASN]Neighbor),
		exportPolicy: cfg.ExportPolicy,
		customers:    make(map[topology.ASN]sav.Interface),
		RIB:          rib.New(),
		SAVAllowlist: sav.New(),
		savMechanism: cfg.SAVMechanism,
		mailbox:      scheduler.NewMailbox[message.BGPAnnouncement](),
		initDelay:    cfg.InitDelay,
		counter:      counter.New(),
		sched:        sched,
		network:      network,
	}

	for iface, edge := range topo.Neighbors(cfg.ASN) {
		rel, ok := relationshipFor(edge.Link)
		if !ok {
			continue
		}
		nb := Neighbor{ASN: edge.To, Relationship: rel, Interface: iface, Latency: edge.Latency}
		r.neighbors = append(r.neighbors, nb)
		r.neighborOf[edge.To] = nb
		if rel == Customer {
			r.customers[edge.To] = sav.Interface(iface)
		}
	}

	for _, p := range cfg.LocalPrefixes {
		r.RIB.SeedOrigin(p, r.ASN)
	}

	network.Register(r)
	return r
}

// Init schedules the Router's initial full broadcast (spec.md §4.3 "It
// schedules a single event at now() + init_delay that performs a full
// broadcast"). Call once, after every Router in the scenario has been
// constructed and registered.
func (r *Router) Init() {
	r.sched.After(r.initDelay, func(now scheduler.Time) {
		r.Broadcast(true)
	})
}

// Neighbors returns the Router's neighbor table in interface-index order.
func (r *Router) Neighbors() []Neighbor {
	return r.neighbors
}

// InterfaceOf returns the interface index assigned to neighbor asn, if any.
func (r *Router) InterfaceOf(asn topology.ASN) (sav.Interface, bool) {
	nb, ok := r.neighborOf[asn]
	if !ok {
		return 0, false
	}
	return sav.Interface(nb.Interface), true
}

// candidate is one (prefix, path) pair eligible to be advertised, before
// loop-prevention and export filtering are applied.
type candidate struct {
	prefix message.Prefix
	path   message.Path
}

func (r *Router) fullCandidates() []candidate {
	out := make([]candidate, 0, len(r.RIB.LocRib))
	for prefix, path := range r.RIB.LocRib {
		out = append(out, candidate{prefix, path})
	}
	return out
}

func (r *Router) deltaCandidates() []candidate {
	var out []candidate
	for prefix, paths := range r.RIB.AdjRibOut {
		for _, path := range paths {
			out = append(out, candidate{prefix, path})
		}
	}
	return out
}

// Broadcast runs spec.md §4.4's "Broadcast" procedure: for each neighbor,
// in interface order, compose a payload from loc_rib (full) or
// adj_ribs_out (delta), apply loop prevention and the export filter, and
// if anything survives, send a BGPAnnouncement after that neighbor's
// latency.
func (r *Router) Broadcast(full bool) {
	var candidates []candidate
	if full {
		candidates = r.fullCandidates()
	} else {
		candidates = r.deltaCandidates()
	}

	for _, nb := range r.neighbors {
		payload := make(map[message.Prefix][]message.Path)
		for _, c := range candidates {
			var advertise message.Path
			switch {
			case r.RIB.LocalPrefixes[c.prefix]:
				advertise = message.Path{r.ASN}
			case !c.path.Contains(nb.ASN):
				advertise = c.path.Prepend(r.ASN)
			default:
				continue // loop prevention (spec.md I5)
			}
			payload[c.prefix] = append(payload[c.prefix], advertise)
		}

		payload = r.applyExportPolicy(nb.ASN, payload)
		if len(payload) == 0 {
			continue
		}

		ann := message.BGPAnnouncement{
			Origin:  r.ASN,
			ID:      r.counter.NextID(int(r.ASN)),
			Payload: payload,
		}
		r.TotalSent++
		dest := nb.ASN
		latency := scheduler.Time(nb.Latency)
		r.sched.After(latency, func(now scheduler.Time) {
			target, ok := r.network.Lookup(dest)
			if !ok {
				scheduler.Logf(now, "router: AS%d has no route to undeliverable neighbor AS%d", r.ASN, dest)
				return
			}
			target.handleDelivery(ann)
		})
	}
}

// applyExportPolicy implements spec.md §4.4's "Export policy filter": if
// exportPolicy is empty, payload passes through unchanged; otherwise only
// the prefixes listed for nasn survive, and a neighbor absent from the
// policy entirely gets nothing.
func (r *Router) applyExportPolicy(nasn topology.ASN, payload map[message.Prefix][]message.Path) map[message.Prefix][]message.Path {
	if len(r.exportPolicy) == 0 {
		return payload
	}
	allowed, ok := r.exportPolicy[nasn]
	if !ok {
		return nil
	}
	filtered := make(map[message.Prefix][]message.Path, len(payload))
	for prefix, paths := range payload {
		if allowed[prefix] {
			filtered[prefix] = paths
		}
	}
	return filtered
}

// handleDelivery puts ann into the Router's mailbox and immediately
// drains it. The scheduler already serializes delivery (one action runs
// to completion before the next is popped), so a Put is always followed
// by its own Get within the same action; the mailbox still exists to give
// that ordering a name and a place to sit, per spec.md §3/§5's per-Router
// inbound queue.
func (r *Router) handleDelivery(ann message.BGPAnnouncement) {
	r.mailbox.Put(ann)
	for r.mailbox.Len() > 0 {
		r.Deliver(r.mailbox.Get())
	}
}

// Deliver is the Router's inbound-announcement handler (spec.md §4.4):
// learn new paths into Adj-RIB-In, run best-path selection on the
// prefixes that changed, queue the delta as Adj-RIB-Out, re-broadcast
// it, then unconditionally recompute the SAV allowlist.
//
// Malformed entries (an empty AS-path) are dropped individually; the rest
// of the announcement is still processed (spec.md §7 "Log, drop message;
// RIBs unchanged" is applied per malformed path, not to the whole
// message, since nothing else here can render a well-formed entry
// inconsistent).
func (r *Router) Deliver(ann message.BGPAnnouncement) {
	delta := make(rib.Delta)
	for prefix, paths := range ann.Payload {
		var valid []message.Path
		for _, p := range paths {
			if len(p) == 0 {
				log.Printf("router: AS%d dropping malformed empty path for %s from AS%d msg %s", r.ASN, prefix, ann.Origin, ann.ID)
				continue
			}
			valid = append(valid, p)
		}
		r.RIB.Learn(prefix, valid, delta)
	}

	for prefix, newPaths := range delta {
		r.RIB.SelectBest(prefix, newPaths)
	}

	r.RIB.QueueDelta(delta)
	r.Broadcast(false)
	r.RIB.FlushOut()

	r.updateSAV()
}

// updateSAV recomputes the SAV allowlist unconditionally, per spec.md
// §4.4 step 4 ("Invoke update_sav() unconditionally after every BGP
// message"), and unions the result into the Router's running allowlist
// so it stays monotonically non-shrinking across the run (spec.md §4.5).
func (r *Router) updateSAV() {
	fresh := sav.Dispatch(r.logf, r.savMechanism, r.RIB, r.customers)
	r.SAVAllowlist.UnionFrom(fresh)
}

func (r *Router) logf(format string, args ...any) {
	scheduler.Logf(r.sched.Now(), fmt.Sprintf("AS%d ", r.ASN)+format, args...)
}
