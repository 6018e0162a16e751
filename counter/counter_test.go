package counter

import "testing"

func TestNew(t *testing.T) {
	c := New()
	if c.Value() != 0 {
		t.Error("New counter has non-zero value", c.Value())
	}
}

func TestNextIDFormatsAsnDashCounter(t *testing.T) {
	c := New()
	if got, want := c.NextID(4), "4-1"; got != want {
		t.Errorf("Expected %q but got %q", want, got)
	}
	if got, want := c.NextID(4), "4-2"; got != want {
		t.Errorf("Expected %q but got %q", want, got)
	}
}
