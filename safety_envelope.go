// safety_envelope.go - Session safety state machine for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

type SafetyState int

const (
	SAFETY_RAMPING_IN SafetyState = iota
	SAFETY_STEADY
	SAFETY_FADING_OUT
	SAFETY_HALTED       // session timeout completed, restart required
	SAFETY_PANIC_HALTED // emergency stop asserted, reversible on release
)

func (s SafetyState) String() string {
	switch s {
	case SAFETY_RAMPING_IN:
		return "RampingIn"
	case SAFETY_STEADY:
		return "Steady"
	case SAFETY_FADING_OUT:
		return "FadingOut"
	case SAFETY_HALTED:
		return "Halted"
	case SAFETY_PANIC_HALTED:
		return "PanicHalted"
	}
	return "Unknown"
}

// SafetyStatus is the envelope's per-frame verdict: a global amplitude
// multiplier in [0,1] and a brightness scalar in [0,GLOBAL_BRIGHTNESS].
type SafetyStatus struct {
	State      SafetyState
	Elapsed    float64
	Multiplier float64
	Brightness uint8
}

// SafetyEnvelope layers the session schedule on top of elapsed time.
// Time-based transitions are pure functions of elapsed seconds; Halted
// is the only latched state, and PanicHalted is decided by the caller
// before any of this runs.
type SafetyEnvelope struct {
	rampIn     float64
	maxSession float64
	fadeOut    float64
	base       uint8
	halted     bool
}

func NewSafetyEnvelope() *SafetyEnvelope {
	return &SafetyEnvelope{
		rampIn:     RAMP_IN_SECONDS,
		maxSession: MAX_SESSION_SECONDS,
		fadeOut:    FADE_OUT_SECONDS,
		base:       GLOBAL_BRIGHTNESS,
	}
}

// Evaluate advances the envelope for this frame. The multiplier is
// monotonically non-decreasing during RampingIn, exactly 1 in Steady,
// monotonically non-increasing during FadingOut, and 0 once Halted.
// Out-of-range arithmetic is clamped, never propagated.
func (se *SafetyEnvelope) Evaluate(elapsed float64) SafetyStatus {
	if se.halted {
		return SafetyStatus{State: SAFETY_HALTED, Elapsed: elapsed}
	}

	switch {
	case elapsed < se.rampIn:
		mul := smoothstep(elapsed / se.rampIn)
		return SafetyStatus{
			State:      SAFETY_RAMPING_IN,
			Elapsed:    elapsed,
			Multiplier: mul,
			Brightness: se.base,
		}

	case elapsed <= se.maxSession:
		return SafetyStatus{
			State:      SAFETY_STEADY,
			Elapsed:    elapsed,
			Multiplier: 1.0,
			Brightness: se.base,
		}

	default:
		fadeFrac := clamp01(1.0 - (elapsed-se.maxSession)/se.fadeOut)
		if fadeFrac <= FADE_FLOOR {
			// One-way door: the session never resumes in software.
			se.halted = true
			return SafetyStatus{State: SAFETY_HALTED, Elapsed: elapsed}
		}
		// Squared for a perceptually smoother decel than linear.
		mul := clamp01(fadeFrac * fadeFrac)
		return SafetyStatus{
			State:      SAFETY_FADING_OUT,
			Elapsed:    elapsed,
			Multiplier: mul,
			Brightness: uint8(clampRange(float64(se.base)*mul, 0, 255)),
		}
	}
}

// Halted reports whether the terminal timeout state has been latched.
func (se *SafetyEnvelope) Halted() bool {
	return se.halted
}

// panicStatus is the verdict used while the emergency input is held:
// everything dark, regardless of where the schedule stands.
func panicStatus(elapsed float64) SafetyStatus {
	return SafetyStatus{State: SAFETY_PANIC_HALTED, Elapsed: elapsed}
}
