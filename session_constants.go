// session_constants.go - Compile-time session parameters for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

// Physical build
const (
	NUM_LEDS     = 20 // LEDs on the ring
	WS281X_PIN   = 12 // Data pin for the hardware backend
	WS281X_ORDER = "GRB"
	PANIC_GPIO   = 14 // Momentary button to GND, pull-up wiring
)

// Entrainment frequencies. The 4-8 Hz theta band is the valid range;
// 5.8/6.2 gives a 0.4 Hz beat between hemispheres.
const (
	LEFT_FREQ_HZ  = 5.8
	RIGHT_FREQ_HZ = 6.2

	MIN_FREQ_HZ = 4.0
	MAX_FREQ_HZ = 8.0
)

// Modulation selection
const (
	USE_SINUSOIDAL_MODULATION = true // exponential pulse otherwise
	PULSE_SHARPNESS           = 2.5

	USE_PHASE_ENHANCEMENT = true
	PHASE_SYNC_STRENGTH   = 0.15 // must stay well below 1/(2*pi)
)

// Auxiliary envelopes
const (
	BREATH_FREQ_HZ = 0.12
	MICRO_ENABLED  = false // fast shimmer, off for a clean spectrum
	MICRO_FREQ_HZ  = 45.0
)

// Safety envelope schedule, in seconds
const (
	RAMP_IN_SECONDS     = 180.0
	MAX_SESSION_SECONDS = 1800.0
	FADE_OUT_SECONDS    = 15.0
	FADE_FLOOR          = 0.01 // fade fraction at or below this halts the session
)

// Output levels and pacing
const (
	GLOBAL_BRIGHTNESS = 70 // 0-255 ceiling, deliberately conservative
	FRAME_MS          = 10 // ~100 FPS animation target
	HALT_IDLE_MS      = 250
)

// Mandala rendering
const (
	MODE_DURATION     = 30.0 // seconds per mask topology
	RADIAL_PETALS     = 8
	REFLECTION_OFFSET = 2
	REFLECTION_DECAY  = 0.35
	CORE_LEDS         = 3 // logical positions reserved at each end
	CENTER_ANCHORS    = 2
)

// Hardware tick clock
const (
	TICK_INTERVAL_US = 100 // 100 microsecond tick period
	MICROS_PER_SEC   = 1e6
)

// Isochronic tone companion output
const (
	TONE_ENABLED       = true
	TONE_SAMPLE_RATE   = 44100
	TONE_CARRIER_LEFT  = 200.0 // Hz, audible carrier for the left channel
	TONE_CARRIER_RIGHT = 210.0
	TONE_MIX_LEVEL     = 0.5 // per-channel share of the mono mix
)

// Channel base colors: warm tone left, cool tone right, amber center.
var (
	leftColor   = RGB{255, 120, 40}
	rightColor  = RGB{40, 130, 255}
	centerColor = RGB{255, 200, 90}
)

// spiralOrder maps logical render order to physical LED position.
// Logical order starts at the physical center of the coil and winds
// outward, alternating sides.
var spiralOrder = [NUM_LEDS]uint8{
	9, 10, 8, 11, 7, 12, 6, 13, 5, 14, 4, 15, 3, 16, 2, 17, 1, 18, 0, 19,
}

// Channel is one of the two entrainment signals. Instances are fixed
// for the lifetime of a session and never mutated after configuration.
type Channel struct {
	Frequency float64 // Target flicker frequency in Hz
	Color     RGB     // Base color for this hemisphere
	Carrier   float64 // Audible carrier for the tone companion
}

var (
	leftChannel  = Channel{Frequency: LEFT_FREQ_HZ, Color: leftColor, Carrier: TONE_CARRIER_LEFT}
	rightChannel = Channel{Frequency: RIGHT_FREQ_HZ, Color: rightColor, Carrier: TONE_CARRIER_RIGHT}
)
