// modulation.go - Channel phase and amplitude synthesis for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import "math"

// Everything in this file is a pure function of its inputs. A frame
// computed at time t is identical no matter which earlier frames ran,
// so a delayed or skipped frame never accumulates drift.

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// smoothstep has zero first derivative at both ends, which avoids the
// perceptible kick a linear ramp produces at session start and at ramp
// completion.
func smoothstep(x float64) float64 {
	x = clamp01(x)
	return x * x * (3.0 - 2.0*x)
}

// phaseOf returns the fractional part of t*f, in [0,1).
func phaseOf(t, f float64) float64 {
	p := math.Mod(t*f, 1.0)
	if p < 0 {
		p += 1.0
	}
	return p
}

// enhancedPhase applies a bounded self-correcting term to the base
// phase. The correction derivative 2*pi*syncStrength must stay below 1
// or the phase can reverse, so syncStrength is capped at 0.15.
func enhancedPhase(t, freq, syncStrength float64) float64 {
	basePhase := phaseOf(t, freq)
	if !USE_PHASE_ENHANCEMENT || syncStrength <= 0 {
		return basePhase
	}
	syncStrength = clampRange(syncStrength, 0, PHASE_SYNC_STRENGTH)
	correction := math.Sin(2*math.Pi*basePhase) * syncStrength
	p := math.Mod(basePhase+correction, 1.0)
	if p < 0 {
		p += 1.0
	}
	return p
}

// sinMod is the preferred modulation waveform: continuous, free of
// derivative discontinuities, minimal harmonic content.
func sinMod(t, freq float64) float64 {
	return 0.5 * (1.0 + math.Sin(2*math.Pi*t*freq))
}

// expPulse is the sharper-onset alternative, driven by a precomputed
// phase rather than raw time.
func expPulse(phase, sharpness float64) float64 {
	return clamp01(math.Exp(-phase * sharpness))
}

// breathingEnvelope is the very slow comfort modulation, range [0.7,1.0].
func breathingEnvelope(t float64) float64 {
	return 0.85 + 0.15*math.Sin(2*math.Pi*BREATH_FREQ_HZ*t)
}

// shimmer is the optional fast micro-texture, range [0,1]. Disabled by
// default to keep the entrainment spectrum clean.
func shimmer(t float64) float64 {
	return 0.5 * (1.0 + math.Sin(2*math.Pi*MICRO_FREQ_HZ*t))
}

// channelAmplitude computes one channel's modulated amplitude at time t
// using the configured waveform.
func channelAmplitude(t float64, ch Channel) float64 {
	if USE_SINUSOIDAL_MODULATION {
		return sinMod(t, ch.Frequency)
	}
	phase := enhancedPhase(t, ch.Frequency, PHASE_SYNC_STRENGTH)
	return expPulse(phase, PULSE_SHARPNESS)
}
