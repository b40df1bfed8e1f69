package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceEqual fails t if got and want differ in length or in any element.
func RequireSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireBitIdentical fails t unless got and want hold the same IEEE-754 bit
// patterns. Unlike ==, this treats identical NaNs as equal and tells -0 from +0.
func RequireBitIdentical(t *testing.T, got, want []float32) {
	t.Helper()
	if err := BitDiff(got, want); err != nil {
		t.Fatal(err)
	}
}

// BitDiff reports the first lane where got and want differ bitwise.
func BitDiff(got, want []float32) error {
	if len(got) != len(want) {
		return fmt.Errorf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			return fmt.Errorf("index %d: got %v (%#08x), want %v (%#08x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
	return nil
}
