// display_interface.go - Light output sink interface for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import "fmt"

// LightError provides detailed error context for output operations.
type LightError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *LightError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("light output %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("light output %s failed: %s", e.Operation, e.Details)
}

// LightOutput is the minimal contract a display backend must satisfy.
// UpdateFrame receives the buffer in physical LED order; SetBrightness
// takes the global 0-255 scalar. There is no acknowledgement channel.
type LightOutput interface {
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	UpdateFrame(frame FrameBuffer) error
	SetBrightness(level uint8)
	Show() error // transmit the staged buffer to the physical display
}

// PanicInput is the emergency-stop collaborator: a debounced boolean
// reading, sampled (not latched) by the orchestrator every frame.
type PanicInput interface {
	Asserted() bool
}

// NewLightOutput builds the backend compiled into this binary. Each
// build tag provides exactly one newPlatformOutput.
func NewLightOutput() (LightOutput, PanicInput, error) {
	return newPlatformOutput()
}
