package mix

import (
	"math"
	"testing"
)

func TestDryWet(t *testing.T) {
	tests := []struct {
		name     string
		dry      float64
		wet      float64
		amount   float64
		expected float64
	}{
		{"100% dry", 1.0, 0.5, 0.0, 1.0},
		{"100% wet", 1.0, 0.5, 1.0, 0.5},
		{"50/50 mix", 1.0, 0.5, 0.5, 0.75},
		{"25% wet", 1.0, 0.0, 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DryWet(tt.dry, tt.wet, tt.amount)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("DryWet(%f, %f, %f) = %f, want %f",
					tt.dry, tt.wet, tt.amount, result, tt.expected)
			}
		})
	}
}

func TestDryWetOrderIndependent(t *testing.T) {
	// wet*amount + dry*(1-amount) must round identically
	for _, amount := range []float64{0.01, 0.3333, 0.5, 0.7071, 1} {
		for _, dry := range []float64{-0.9, 0.123456789, 0.5} {
			wet := math.Atan(dry * 7)
			want := wet*amount + dry*(1-amount)
			if got := DryWet(dry, wet, amount); got != want {
				t.Errorf("DryWet(%g, %g, %g) = %v, want %v", dry, wet, amount, got, want)
			}
		}
	}
}
