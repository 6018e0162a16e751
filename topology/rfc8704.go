package topology

// BuildRFC8704Topology constructs the worked example topology from RFC
// 8704 / spec.md §8: AS1 is a multihomed customer of AS2, AS3 and AS5; AS2
// and AS3 are customers of AS4; AS4 and AS5 are peers. Every directed edge
// carries the same 0.05 latency, matching original_source/savsim.py.
//
// Promoted from that script's inline __main__ block into a reusable
// builder (spec.md only describes this topology in prose) so both
// cmd/savsim and the integration tests can exercise the exact scenario
// spec.md §8 specifies.
func BuildRFC8704Topology() *Topology {
	const latency = 0.05
	t := New()
	add := func(a, b ASN, ab, ba LinkType) {
		t.AddEdge(a, b, ab, latency)
		t.AddEdge(b, a, ba, latency)
	}
	add(1, 2, C2P, P2C)
	add(1, 3, C2P, P2C)
	add(1, 5, C2P, P2C)
	add(2, 4, C2P, P2C)
	add(3, 4, C2P, P2C)
	add(4, 5, P2P, P2P)
	t.Validate()
	return t
}
