// Package counter provides the monotonically increasing per-Router counter
// spec.md §4.4 uses to build each outbound BGPAnnouncement's id, of the
// form "{asn}-{k}". Adapted from transitorykris-kbgp/counter/counter.go,
// kept close to its original shape and renamed Increment's counterpart so
// it returns the formatted id string a Router actually needs at the call
// site.
package counter

import (
	"fmt"
)

// Counter is a 64 bit counter
type Counter struct {
	count uint64
}

// New creates a new 64 bit counter
func New() *Counter {
	return new(Counter)
}

// Reset sets the counter back to zero
func (c *Counter) Reset() {
	c.count = 0
}

// Increment adds one to the counter
func (c *Counter) Increment() {
	c.count++
}

// Value returns the current count
func (c *Counter) Value() uint64 {
	return uint64(c.count)
}

// String implements fmt.Stringer
func (c *Counter) String() string {
	return fmt.Sprintf("%d", c.count)
}

// NextID increments the counter and formats "{asn}-{k}" for the new value,
// the BGPAnnouncement.ID shape spec.md §4.4 mandates.
func (c *Counter) NextID(asn int) string {
	c.Increment()
	return fmt.Sprintf("%d-%d", asn, c.count)
}
