package logging

import (
	"testing"
)

func TestInitOnce(t *testing.T) {
	if err := Init("info"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if L() == nil {
		t.Fatal("L() returned nil after Init")
	}

	// Later calls are no-ops, even with a different (or invalid) level.
	if err := Init("bogus-level"); err != nil {
		t.Errorf("Second Init should be a no-op, got error: %v", err)
	}
}
