package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAddress,
				Kind:   KindOutOfBounds,
				Path:   []string{"hidden", "node[4]"},
				Detail: "index 4 out of bounds (length 4)",
			},
			contains: []string{"[address]", "out_of_bounds", "hidden.node[4]", "length 4"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLayout,
				Kind:  KindInvalidTopology,
			},
			contains: []string{"[layout]", "invalid_topology"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAllocate,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[allocate]", "allocation", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseAccess,
		Kind:  KindOutOfBounds,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAddress,
		Kind:  KindOutOfBounds,
		Path:  []string{"output"},
	}

	if !err.Is(&Error{Phase: PhaseAddress, Kind: KindOutOfBounds}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseAccess, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseAddress, Kind: KindReleased}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseAddress, Kind: KindOutOfBounds}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestHasKind(t *testing.T) {
	inner := Released(PhaseAccess, "node")
	wrapped := fmt.Errorf("read bias: %w", inner)

	if !HasKind(wrapped, KindReleased) {
		t.Error("HasKind should see through fmt wrapping")
	}
	if HasKind(wrapped, KindOverflow) {
		t.Error("HasKind matched the wrong kind")
	}
	if HasKind(nil, KindReleased) {
		t.Error("HasKind(nil) should be false")
	}

	chained := Wrap(PhaseInit, KindAllocation, inner, "populate")
	if !HasKind(chained, KindReleased) {
		t.Error("HasKind should follow Cause")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseAddress, KindOutOfBounds).
		Path("output", "node[2]").
		Value(2).
		Cause(cause).
		Detail("layer has %d nodes", 2).
		Build()

	if err.Phase != PhaseAddress {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseAddress)
	}
	if err.Kind != KindOutOfBounds {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
	}
	if len(err.Path) != 2 || err.Path[0] != "output" || err.Path[1] != "node[2]" {
		t.Errorf("Path = %v, want [output node[2]]", err.Path)
	}
	if err.Value != 2 {
		t.Errorf("Value = %v, want 2", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "layer has 2 nodes" {
		t.Errorf("Detail = %v, want 'layer has 2 nodes'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseAddress, []string{"hidden"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		cause := errors.New("limit")
		err := AllocationFailed(PhaseAllocate, 1024, cause)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
		if !errors.Is(err, cause) {
			t.Error("AllocationFailed should keep its cause")
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseLayout, []string{"hidden"}, "layer size")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
	})

	t.Run("InvalidTopology", func(t *testing.T) {
		err := InvalidTopology("hidden count must be positive", 0)
		if err.Phase != PhaseLayout || err.Kind != KindInvalidTopology {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("InvalidLayer", func(t *testing.T) {
		err := InvalidLayer(PhaseInit, "input", "has no weights")
		if err.Kind != KindInvalidLayer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidLayer)
		}
		if !strings.Contains(err.Error(), "input") {
			t.Errorf("message %q should name the layer", err.Error())
		}
	})

	t.Run("StrideMismatch", func(t *testing.T) {
		err := StrideMismatch([]string{"hidden", "node[1]"}, "wcount", 2, 3)
		if err.Phase != PhaseValidate || err.Kind != KindStrideMismatch {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if err.Value != uint32(2) {
			t.Errorf("Value = %v, want 2", err.Value)
		}
	})

	t.Run("Released", func(t *testing.T) {
		err := Released(PhaseAccess, "network")
		if err.Kind != KindReleased {
			t.Errorf("Kind = %v, want %v", err.Kind, KindReleased)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(PhaseValidate, []string{"header", "hid-act"}, 9, "activation")
		if err.Kind != KindInvalidEnum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
		}
	})
}
