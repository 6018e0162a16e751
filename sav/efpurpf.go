package sav

import (
	"github.com/li-ch/savsim/message"
	"github.com/li-ch/savsim/rib"
	"github.com/li-ch/savsim/topology"
)

// ComputeEFPuRPFA implements spec.md §4.5 steps 1-3 exactly, recomputing
// from scratch against the Router's current Adj-RIB-In. customers maps
// each customer-neighbor ASN to its interface index.
func ComputeEFPuRPFA(r *rib.RIB, customers map[topology.ASN]Interface) Allowlist {
	// Step 1/2: SetA (customer-origin ASes seen anywhere) and SetXs (for
	// every AS seen anywhere in any path, the prefixes reachable via it),
	// computed together in one pass over Adj-RIB-In exactly as
	// original_source/router.py does.
	setA := make(asnSet)
	setXs := make(map[topology.ASN]prefixSet)
	for prefix, paths := range r.AdjRibIn {
		for _, path := range paths.Paths() {
			for _, asn := range path {
				if _, isCustomer := customers[asn]; isCustomer {
					setA[asn] = true
				}
				x, ok := setXs[asn]
				if !ok {
					x = make(prefixSet)
					setXs[asn] = x
				}
				x[prefix] = true
			}
		}
	}

	// Step 3: for each a in SetA, union Xa into every customer interface
	// whose AS originates a prefix in Xa. REDESIGN FLAG #3 (spec.md §9):
	// setXs holds entries for every AS seen, not only those in setA, but
	// only entries for a in setA are ever consulted here.
	allowlist := New()
	for a := range setA {
		xa := setXs[a]
		for prefix := range xa {
			for origin := range r.PrefixOrigins[prefix] {
				iface, isCustomer := customers[origin]
				if !isCustomer {
					continue
				}
				unionPrefixSet(allowlist, iface, xa)
			}
		}
	}
	return allowlist
}

// Dispatch recognizes every SAVMechanism value but only EFPuRPF_A has
// operational behavior; the rest log a warning and leave the allowlist
// unchanged (spec.md §4.5 "Other SAVMechanism values", §7).
func Dispatch(logf func(format string, args ...any), mechanism message.SAVMechanism, r *rib.RIB, customers map[topology.ASN]Interface) Allowlist {
	if mechanism == message.EFPuRPF_A {
		return ComputeEFPuRPFA(r, customers)
	}
	logf("SAV mechanism %v is unavailable, allowlist unchanged", mechanism)
	return New()
}
