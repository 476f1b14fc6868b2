// tone_lut.go - Sine lookup table for the tone companion output

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import "math"

const (
	sinLUTSize = 8192           // ~0.00077 radian resolution
	sinLUTMask = sinLUTSize - 1 // Mask for fast modulo
)

const sinLUTScale = float32(sinLUTSize) / (2 * math.Pi) // phase to index

// sinLUT contains precomputed sine values for phase [0, 2pi).
var sinLUT [sinLUTSize]float32

func init() {
	for i := 0; i < sinLUTSize; i++ {
		phase := float64(i) * 2 * math.Pi / float64(sinLUTSize)
		sinLUT[i] = float32(math.Sin(phase))
	}
}

// fastSin returns sin(phase) using the lookup table with linear
// interpolation. Phase is in radians, non-negative.
func fastSin(phase float32) float32 {
	idxF := phase * sinLUTScale
	idx := int(idxF) & sinLUTMask
	next := (idx + 1) & sinLUTMask
	frac := idxF - float32(math.Floor(float64(idxF)))
	return sinLUT[idx] + (sinLUT[next]-sinLUT[idx])*frac
}
