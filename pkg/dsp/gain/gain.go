// Package gain provides amplitude and gain-related DSP operations.
package gain

import (
	"math"
	"strconv"
)

// MinDB is the minimum dB value (effectively -infinity)
const MinDB = -200.0

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return math.Max(MinDB, 20.0*math.Log10(linear))
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// FormatDb renders a level for meters, e.g. "-6.0 dB" or "-inf dB".
func FormatDb(db float64) string {
	if db <= MinDB {
		return "-inf dB"
	}
	return strconv.FormatFloat(db, 'f', 1, 64) + " dB"
}
