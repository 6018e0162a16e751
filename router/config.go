package router

import (
	"github.com/li-ch/savsim/message"
	"github.com/li-ch/savsim/scheduler"
	"github.com/li-ch/savsim/topology"
)

// Config is the per-AS setup a Router is constructed from: everything the
// simulation driver supplies at scenario-build time (spec.md §3's
// per-Router state, minus what the topology already carries).
type Config struct {
	ASN topology.ASN

	// LocalPrefixes is the set of prefixes this AS originates.
	LocalPrefixes []message.Prefix

	// ExportPolicy maps neighbor ASN -> the set of prefixes permitted to
	// it. A nil or empty map is permissive (spec.md §3 "empty means
	// permissive"); a neighbor absent from a non-empty map gets nothing.
	ExportPolicy map[topology.ASN]map[message.Prefix]bool

	// SAVMechanism selects the SAV allowlist algorithm to run after every
	// BGP update (spec.md §6). Only message.EFPuRPF_A is operational.
	SAVMechanism message.SAVMechanism

	// InitDelay is how long after construction the Router waits before
	// its initial full broadcast (spec.md §4.3).
	InitDelay scheduler.Time
}
