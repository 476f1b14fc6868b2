//go:build headless

// display_backend_headless.go - Recording backend for tests and CI

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import "sync"

// HeadlessOutput keeps the last transmitted frame and brightness so
// tests can assert on exactly what would have reached the hardware.
type HeadlessOutput struct {
	mu         sync.Mutex
	staged     FrameBuffer
	shown      FrameBuffer
	brightness uint8
	showCount  int
	started    bool

	panicFlag bool
}

func newPlatformOutput() (LightOutput, PanicInput, error) {
	ho := &HeadlessOutput{brightness: GLOBAL_BRIGHTNESS}
	return ho, ho, nil
}

func (ho *HeadlessOutput) Start() error {
	ho.mu.Lock()
	defer ho.mu.Unlock()
	ho.started = true
	return nil
}

func (ho *HeadlessOutput) Stop() error {
	ho.mu.Lock()
	defer ho.mu.Unlock()
	ho.started = false
	return nil
}

func (ho *HeadlessOutput) Close() error {
	return ho.Stop()
}

func (ho *HeadlessOutput) IsStarted() bool {
	ho.mu.Lock()
	defer ho.mu.Unlock()
	return ho.started
}

func (ho *HeadlessOutput) UpdateFrame(frame FrameBuffer) error {
	ho.mu.Lock()
	ho.staged = frame
	ho.mu.Unlock()
	return nil
}

func (ho *HeadlessOutput) SetBrightness(level uint8) {
	ho.mu.Lock()
	ho.brightness = level
	ho.mu.Unlock()
}

func (ho *HeadlessOutput) Show() error {
	ho.mu.Lock()
	ho.shown = ho.staged
	ho.showCount++
	ho.mu.Unlock()
	return nil
}

// Asserted implements PanicInput.
func (ho *HeadlessOutput) Asserted() bool {
	ho.mu.Lock()
	defer ho.mu.Unlock()
	return ho.panicFlag
}

// SetPanic drives the simulated emergency input from tests.
func (ho *HeadlessOutput) SetPanic(on bool) {
	ho.mu.Lock()
	ho.panicFlag = on
	ho.mu.Unlock()
}

// LastShown returns the most recently transmitted frame and brightness.
func (ho *HeadlessOutput) LastShown() (FrameBuffer, uint8, int) {
	ho.mu.Lock()
	defer ho.mu.Unlock()
	return ho.shown, ho.brightness, ho.showCount
}
