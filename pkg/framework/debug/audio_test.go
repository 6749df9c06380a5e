package debug

import (
	"math"
	"strings"
	"testing"
)

func TestInspector(t *testing.T) {
	in := NewInspector()

	t.Run("Levels", func(t *testing.T) {
		r := in.Inspect([]float32{0.5, -0.5, 0.5, -0.5})
		if r.Peak != 0.5 || r.RMS != 0.5 || r.DC != 0 {
			t.Errorf("Inspect = %+v", r)
		}
		if !r.Finite() || r.ClippedSamples != 0 {
			t.Errorf("clean buffer flagged: %+v", r)
		}
	})

	t.Run("NonFinite", func(t *testing.T) {
		nan := float32(math.NaN())
		inf := float32(math.Inf(1))
		r := in.Inspect([]float32{0.25, nan, inf, -0.25})
		if r.NonFinite != 2 || r.Finite() {
			t.Errorf("NonFinite = %d", r.NonFinite)
		}
		if r.Peak != 0.25 {
			t.Errorf("non-finite samples should not affect Peak, got %f", r.Peak)
		}
	})

	t.Run("Clipping", func(t *testing.T) {
		r := in.Inspect([]float32{1.0, -1.5, 0.2})
		if r.ClippedSamples != 2 || r.Peak != 1.5 {
			t.Errorf("Inspect = %+v", r)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if r := in.Inspect(nil); r.Samples != 0 || r.Peak != 0 {
			t.Errorf("Inspect(nil) = %+v", r)
		}
	})

	t.Run("Issues", func(t *testing.T) {
		issues := in.Issues([]float32{0.5, 0.5, 0.5, float32(math.NaN())}, "left")
		joined := strings.Join(issues, "\n")
		if !strings.Contains(joined, "left: 1 non-finite samples") {
			t.Errorf("missing non-finite issue: %v", issues)
		}
		if !strings.Contains(joined, "DC offset") {
			t.Errorf("missing DC issue: %v", issues)
		}
		if len(in.Issues([]float32{0.1, -0.1}, "ok")) != 0 {
			t.Error("clean buffer should have no issues")
		}
	})
}
