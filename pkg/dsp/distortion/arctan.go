// Package distortion implements the arctan saturation stage of the Visual effect.
package distortion

import "math"

const twoOverPi = 2 / math.Pi

// ArctanShape maps any input onto (-1, 1) with the scaled arctangent
// (2/π)·atan(x). It is odd and monotonic, and close to linear near zero.
func ArctanShape(x float64) float64 {
	return twoOverPi * math.Atan(x)
}

// Settings holds the plain parameter values applied to one block.
type Settings struct {
	Drive      float64
	Distortion float64
	Mix        float64 // 0 = clean only, 1 = shaped only
	Volume     float64
}

// DefaultSettings returns every control at 1.0.
func DefaultSettings() Settings {
	return Settings{Drive: 1, Distortion: 1, Mix: 1, Volume: 1}
}
