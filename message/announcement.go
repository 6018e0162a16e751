package message

import "github.com/li-ch/savsim/topology"

// BGPAnnouncement is a path-vector update: for each prefix, the set of
// AS-paths the sender is announcing (spec.md §4.4, §6).
type BGPAnnouncement struct {
	Origin  topology.ASN
	ID      string
	Payload map[Prefix][]Path
}

// Empty reports whether the announcement carries no prefixes at all. An
// empty payload is never sent (spec.md §4.4 "Broadcast").
func (a BGPAnnouncement) Empty() bool {
	return len(a.Payload) == 0
}
