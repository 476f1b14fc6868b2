//go:build headless

// tone_backend_headless.go - Silent tone output for tests and CI

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

type HeadlessTonePlayer struct {
	started bool
	chip    *ToneChip
}

func NewToneOutput(sampleRate int, chip *ToneChip) (ToneOutput, error) {
	return &HeadlessTonePlayer{chip: chip}, nil
}

func (tp *HeadlessTonePlayer) Start() {
	tp.started = true
}

func (tp *HeadlessTonePlayer) Stop() {
	tp.started = false
}

func (tp *HeadlessTonePlayer) Close() {
	tp.started = false
}

func (tp *HeadlessTonePlayer) IsStarted() bool {
	return tp.started
}
