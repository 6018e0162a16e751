package router

import (
	"testing"

	"github.com/li-ch/savsim/message"
	"github.com/li-ch/savsim/scheduler"
	"github.com/li-ch/savsim/topology"
)

// newScenario returns a fresh scheduler, an empty topology and an empty
// network for a test to build its Routers on and drive convergence with.
func newScenario() (*scheduler.Scheduler, *topology.Topology, *Network) {
	return scheduler.New(), topology.New(), NewNetwork()
}

// TestS1SingleEdgeCustomerProviderConverges reproduces spec.md §8 scenario
// S1: a single c2p edge a-b, both originating one prefix. After one
// latency tick, b learns a's prefix directly (loc_rib[pa] = [a]) and a's
// own allowlist for its interface to b (a provider) stays empty.
func TestS1SingleEdgeCustomerProviderConverges(t *testing.T) {
	sched, topo, net := newScenario()
	topo.AddEdge(1, 2, topology.C2P, 1.0) // AS1 is customer of AS2
	topo.AddEdge(2, 1, topology.P2C, 1.0)

	a := NewRouter(Config{ASN: 1, LocalPrefixes: []message.Prefix{"pa"}, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	b := NewRouter(Config{ASN: 2, LocalPrefixes: []message.Prefix{"pb"}, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	a.Init()
	b.Init()

	sched.Run(10)

	if !b.RIB.LocRib["pa"].Equal(message.Path{1}) {
		t.Errorf("Expected b.loc_rib[pa] = [1] (I2: loc_rib is always a member of adj_ribs_in, which never carries a self-prepend) but got %v", b.RIB.LocRib["pa"])
	}
	ifaceToB, _ := a.InterfaceOf(2)
	if allowed := a.SAVAllowlist.Prefixes(ifaceToB); len(allowed) != 0 {
		t.Errorf("Expected AS1's allowlist for its provider interface to be empty but got %v", allowed)
	}
}

// TestS2ThreeNodeLineConverges reproduces S2: a-b-c, both c2p, a originates
// p. After convergence c.loc_rib[p] = [b,a] (the path as received, with no
// self-prepend) and b.sav_allowlist on its interface to a contains p (a is
// b's customer).
func TestS2ThreeNodeLineConverges(t *testing.T) {
	sched, topo, net := newScenario()
	topo.AddEdge(1, 2, topology.C2P, 1.0)
	topo.AddEdge(2, 1, topology.P2C, 1.0)
	topo.AddEdge(2, 3, topology.C2P, 1.0)
	topo.AddEdge(3, 2, topology.P2C, 1.0)

	a := NewRouter(Config{ASN: 1, LocalPrefixes: []message.Prefix{"p"}, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	b := NewRouter(Config{ASN: 2, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	c := NewRouter(Config{ASN: 3, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	a.Init()
	b.Init()
	c.Init()

	sched.Run(10)

	if !c.RIB.LocRib["p"].Equal(message.Path{2, 1}) {
		t.Errorf("Expected c.loc_rib[p] = [2,1] (self is never prepended on receipt, only on forwarding) but got %v", c.RIB.LocRib["p"])
	}
	ifaceToA, _ := b.InterfaceOf(1)
	allowed := b.SAVAllowlist.Prefixes(ifaceToA)
	if !allowed["p"] {
		t.Errorf("Expected b's allowlist on its AS1 interface to contain p but got %v", allowed)
	}
}

// TestS3ExportPolicyFiltersPerNeighbor reproduces S3: a Router originating
// {p1,p2} with export policy {n:[p1]} must only ever let n see p1.
func TestS3ExportPolicyFiltersPerNeighbor(t *testing.T) {
	sched, topo, net := newScenario()
	topo.AddEdge(1, 2, topology.P2P, 1.0)
	topo.AddEdge(2, 1, topology.P2P, 1.0)

	a := NewRouter(Config{
		ASN:           1,
		LocalPrefixes: []message.Prefix{"p1", "p2"},
		ExportPolicy:  map[topology.ASN]map[message.Prefix]bool{2: {"p1": true}},
		SAVMechanism:  message.EFPuRPF_A,
	}, topo, sched, net)
	b := NewRouter(Config{ASN: 2, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	a.Init()
	b.Init()

	sched.Run(10)

	if _, ok := b.RIB.LocRib["p1"]; !ok {
		t.Error("Expected b to learn p1")
	}
	if _, ok := b.RIB.LocRib["p2"]; ok {
		t.Error("Expected b never to learn p2, which AS1's export policy withholds")
	}
}

// TestS4EqualLengthPathsDoNotDisplace reproduces S4: two equal-length
// paths P then Q arrive for the same prefix; loc_rib must remain P.
func TestS4EqualLengthPathsDoNotDisplace(t *testing.T) {
	sched, topo, net := newScenario()
	r := NewRouter(Config{ASN: 9, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)

	r.Deliver(message.BGPAnnouncement{Origin: 1, ID: "1-1", Payload: map[message.Prefix][]message.Path{
		"p": {{1}},
	}})
	r.Deliver(message.BGPAnnouncement{Origin: 2, ID: "2-1", Payload: map[message.Prefix][]message.Path{
		"p": {{2}},
	}})

	if !r.RIB.LocRib["p"].Equal(message.Path{1}) {
		t.Errorf("Expected loc_rib[p] to remain the first-arrived path [1] but got %v", r.RIB.LocRib["p"])
	}
}

// TestLoopPreventionNeverAdvertisesPathContainingNeighbor checks spec.md
// I5: a Router never sends neighbor n a path that already contains n.
func TestLoopPreventionNeverAdvertisesPathContainingNeighbor(t *testing.T) {
	sched, topo, net := newScenario()
	topo.AddEdge(1, 2, topology.P2P, 1.0)
	topo.AddEdge(2, 1, topology.P2P, 1.0)

	r := NewRouter(Config{ASN: 1, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)
	NewRouter(Config{ASN: 2, SAVMechanism: message.EFPuRPF_A}, topo, sched, net)

	r.RIB.LocRib["p"] = message.Path{2, 1}
	r.Broadcast(true)

	if r.TotalSent != 0 {
		t.Errorf("Expected no message sent to AS2 for a path that already contains it, got TotalSent=%d", r.TotalSent)
	}
}

func TestExportPolicyAbsentNeighborGetsNothing(t *testing.T) {
	sched, topo, net := newScenario()
	r := NewRouter(Config{
		ASN:           1,
		LocalPrefixes: []message.Prefix{"p1"},
		ExportPolicy:  map[topology.ASN]map[message.Prefix]bool{99: {"p1": true}},
	}, topo, sched, net)

	payload := r.applyExportPolicy(2, map[message.Prefix][]message.Path{"p1": {{1}}})
	if len(payload) != 0 {
		t.Errorf("Expected neighbor absent from a non-empty policy to get nothing, got %v", payload)
	}
}
