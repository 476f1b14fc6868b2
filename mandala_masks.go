// mandala_masks.go - Spatial intensity masks for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import "math"

// MandalaMode is the active mask topology. It is derived from elapsed
// time alone, never stored, so the visual schedule survives dropped
// frames unchanged.
type MandalaMode int

const (
	MODE_RADIAL MandalaMode = iota
	MODE_SPIRAL
	MODE_INTERFERENCE
	NUM_MODES
)

func (m MandalaMode) String() string {
	switch m {
	case MODE_RADIAL:
		return "Radial"
	case MODE_SPIRAL:
		return "Spiral"
	case MODE_INTERFERENCE:
		return "Interference"
	}
	return "Unknown"
}

// mandalaModeAt cycles the topology every MODE_DURATION seconds to
// avoid visual habituation.
func mandalaModeAt(t float64) MandalaMode {
	return MandalaMode(int(t/MODE_DURATION) % int(NUM_MODES))
}

// spiralMask produces a bright band travelling around the ring at the
// given speed, with a linear falloff over circular distance and a 0.2
// baseline so no position ever goes fully dark.
func spiralMask(i int, t, speed float64) float64 {
	pos := float64(i) / float64(NUM_LEDS)
	shift := math.Mod(t*speed, 1.0)

	d := math.Abs(pos - shift)
	if d > 0.5 {
		d = 1.0 - d
	}

	m := 1.0 - d*2.0
	return clamp01(m + 0.2)
}

// radialMask divides the ring into petals sweeping in phase with the
// channel frequency.
func radialMask(i int, t, freq float64, petals int) float64 {
	pos := float64(i) / float64(NUM_LEDS)
	angle := pos * float64(petals)
	carrier := 0.5 * (math.Sin(2*math.Pi*(t*freq+angle)) + 1.0)
	return clamp01(carrier)
}

// interferenceMask sums two travelling waves with opposite position
// offsets. The beat pattern it produces is the visualization of the
// effective entrainment frequency |fL - fR|.
func interferenceMask(i int, t, fL, fR float64) float64 {
	pos := float64(i) / float64(NUM_LEDS)
	a := math.Sin(2 * math.Pi * (t*fL + pos))
	b := math.Sin(2 * math.Pi * (t*fR - pos))
	mix := (a+b)*0.25 + 0.5
	return clamp01(mix)
}

// bodyMask selects and evaluates the active topology for one logical
// body position.
func bodyMask(mode MandalaMode, pos int, t float64) float64 {
	meanFreq := (LEFT_FREQ_HZ + RIGHT_FREQ_HZ) * 0.5
	switch mode {
	case MODE_RADIAL:
		return radialMask(pos, t, meanFreq, RADIAL_PETALS)
	case MODE_SPIRAL:
		return spiralMask(pos, t, 0.3+0.02*meanFreq)
	default:
		return interferenceMask(pos, t, LEFT_FREQ_HZ, RIGHT_FREQ_HZ)
	}
}
