// tone_chip.go - Isochronic tone generator for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"math"
	"sync"
)

// ToneVoice is one audible channel: a sine carrier amplitude-modulated
// at the entrainment frequency, so the light flicker and the tone pulse
// share the same rhythm.
type ToneVoice struct {
	carrierFreq  float64 // Audible carrier in Hz
	modFreq      float64 // Entrainment modulation in Hz
	carrierPhase float64 // radians, wrapped to [0, 2pi)
	modPhase     float64
}

// ToneOutput is the audio sink contract for the tone chip. Each build
// tag supplies one NewToneOutput.
type ToneOutput interface {
	Start()
	Stop()
	Close()
	IsStarted() bool
}

// ToneChip mixes the two voices to mono. The orchestrator publishes a
// per-channel level each frame (the safety multiplier folded into the
// frame's amplitude envelope); the audio pull path reads it under the
// chip lock.
type ToneChip struct {
	mu      sync.RWMutex
	voices  [2]*ToneVoice
	levels  [2]float64 // 0..1, gated by the safety envelope
	enabled bool
	output  ToneOutput
}

func NewToneChip() (*ToneChip, error) {
	chip := &ToneChip{
		voices: [2]*ToneVoice{
			{carrierFreq: leftChannel.Carrier, modFreq: leftChannel.Frequency},
			{carrierFreq: rightChannel.Carrier, modFreq: rightChannel.Frequency},
		},
	}

	output, err := NewToneOutput(TONE_SAMPLE_RATE, chip)
	if err != nil {
		return nil, err
	}
	chip.output = output
	return chip, nil
}

// SetLevels publishes the gated per-channel amplitudes for this frame.
// Values outside [0,1] are clamped.
func (chip *ToneChip) SetLevels(left, right float64) {
	chip.mu.Lock()
	chip.levels[0] = clamp01(left)
	chip.levels[1] = clamp01(right)
	chip.mu.Unlock()
}

// Silence zeroes both levels in one call; the panic and halt paths use
// it so audio dies the same frame the LEDs go black.
func (chip *ToneChip) Silence() {
	chip.SetLevels(0, 0)
}

func (v *ToneVoice) generateSample(level float64) float32 {
	carrier := fastSin(float32(v.carrierPhase))
	// Isochronic gate: full-depth amplitude modulation at the
	// entrainment frequency.
	gate := 0.5 * (1.0 + float64(fastSin(float32(v.modPhase))))

	v.carrierPhase += 2 * math.Pi * v.carrierFreq / TONE_SAMPLE_RATE
	if v.carrierPhase >= 2*math.Pi {
		v.carrierPhase -= 2 * math.Pi
	}
	v.modPhase += 2 * math.Pi * v.modFreq / TONE_SAMPLE_RATE
	if v.modPhase >= 2*math.Pi {
		v.modPhase -= 2 * math.Pi
	}

	return carrier * float32(gate*level)
}

// GenerateSample produces the next mono sample in [-1,1].
func (chip *ToneChip) GenerateSample() float32 {
	chip.mu.Lock()
	defer chip.mu.Unlock()

	if !chip.enabled {
		return 0
	}

	var sample float32
	for i, v := range chip.voices {
		sample += v.generateSample(chip.levels[i]) * TONE_MIX_LEVEL
	}

	if sample > 1.0 {
		sample = 1.0
	} else if sample < -1.0 {
		sample = -1.0
	}
	return sample
}

func (chip *ToneChip) Start() {
	chip.mu.Lock()
	chip.enabled = true
	chip.mu.Unlock()
	chip.output.Start()
}

func (chip *ToneChip) Stop() {
	chip.mu.Lock()
	chip.enabled = false
	chip.mu.Unlock()
	chip.output.Stop()
	chip.output.Close()
}
