package message

import (
	"github.com/google/uuid"
	"github.com/li-ch/savsim/topology"
)

// SAVNETMessage is reserved for a future SAVNET (§6) control-plane
// exchange; no SAVMechanism produces or consumes one today. spec.md leaves
// its wire shape undefined beyond {node_id, message_id}, so — unlike
// BGPAnnouncement.ID, whose "{asn}-{k}" format spec.md §4.4 mandates — its
// ID is a generated UUID rather than a router-local counter value.
type SAVNETMessage struct {
	Origin topology.ASN
	ID     string
}

// NewSAVNETMessage creates a reserved SAVNET message originated by asn.
func NewSAVNETMessage(asn topology.ASN) SAVNETMessage {
	return SAVNETMessage{Origin: asn, ID: uuid.NewString()}
}
