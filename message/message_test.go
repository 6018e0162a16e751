package message

import (
	"testing"

	"github.com/li-ch/savsim/topology"
)

func TestPathEqual(t *testing.T) {
	a := Path{1, 2, 3}
	b := Path{1, 2, 3}
	c := Path{1, 3, 2}
	if !a.Equal(b) {
		t.Error("Expected identical paths to be equal")
	}
	if a.Equal(c) {
		t.Error("Expected differently-ordered paths not to be equal")
	}
	if a.Equal(Path{1, 2}) {
		t.Error("Expected paths of different length not to be equal")
	}
}

func TestPathOriginAndLastHop(t *testing.T) {
	p := Path{4, 2, 1}
	if p.Origin() != 1 {
		t.Errorf("Expected origin AS1 but got AS%d", p.Origin())
	}
	if p.LastHop() != 4 {
		t.Errorf("Expected last hop AS4 but got AS%d", p.LastHop())
	}
}

func TestPathContains(t *testing.T) {
	p := Path{4, 2, 1}
	if !p.Contains(2) {
		t.Error("Expected path to contain AS2")
	}
	if p.Contains(5) {
		t.Error("Expected path not to contain AS5")
	}
}

func TestPathPrependDoesNotMutateOriginal(t *testing.T) {
	p := Path{2, 1}
	q := p.Prepend(4)
	want := Path{4, 2, 1}
	if !q.Equal(want) {
		t.Errorf("Expected %v but got %v", want, q)
	}
	if !p.Equal((Path{2, 1})) {
		t.Errorf("Expected original path unmutated but got %v", p)
	}
}

func TestSAVMechanismImplemented(t *testing.T) {
	if !EFPuRPF_A.Implemented() {
		t.Error("Expected EFPuRPF_A to be implemented")
	}
	for _, m := range []SAVMechanism{STRICTuRPF, LOOSEuRPF, FPuRPF, EFPuRPF_B, SAVNET} {
		if m.Implemented() {
			t.Errorf("Expected %v not to be implemented", m)
		}
	}
}

func TestNewSAVNETMessageHasUniqueID(t *testing.T) {
	a := NewSAVNETMessage(topology.ASN(1))
	b := NewSAVNETMessage(topology.ASN(1))
	if a.ID == b.ID {
		t.Error("Expected distinct SAVNET message IDs")
	}
	if a.Origin != 1 {
		t.Errorf("Expected origin AS1 but got AS%d", a.Origin)
	}
}
