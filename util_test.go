package squircle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs made of them, with an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// mustPanic calls fn and returns the value it panicked with. It fails the test
// if fn doesn't panic.
func mustPanic(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Error("expected panic")
		}
	}()
	fn()
	return nil
}
