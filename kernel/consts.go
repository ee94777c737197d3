package kernel

import "math"

var (
	// FwhmToStdFactor converts a full width at half maximum to a gaussian
	// standard deviation: std = fwhm / FwhmToStdFactor, 2*sqrt(2*ln2) ~= 2.3548200.
	FwhmToStdFactor = 2 * math.Sqrt(2*math.Ln2)

	sqrt2Pi = math.Sqrt(2 * math.Pi)
)

const (
	// rows handled by a single goroutine before the work is split
	DefaultMinRowsPerWorker = 64
)
