package param

import (
	"fmt"
	"math"
)

// Common parameter formatters

// DecibelFormatter formats dB values
func DecibelFormatter(db float64) string {
	if db <= -60 {
		return "-∞ dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// LinearGainFormatter shows a linear multiplier together with its dB value,
// e.g. "2.00x (+6.0 dB)".
func LinearGainFormatter(gain float64) string {
	if gain <= 0 {
		return "0.00x (-∞ dB)"
	}
	db := 20 * math.Log10(gain)
	return fmt.Sprintf("%.2fx (%+.1f dB)", gain, db)
}

// RatioPercentFormatter formats a 0-1 fraction as a percentage.
func RatioPercentFormatter(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

// MultiplierFormatter formats a plain gain stage as "12.50x".
func MultiplierFormatter(value float64) string {
	return fmt.Sprintf("%.2fx", value)
}
