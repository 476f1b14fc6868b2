// frame_engine.go - Per-frame render orchestration for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"
)

// StatusCapable is an optional backend capability: a one-line session
// status for overlays or clipboard export.
type StatusCapable interface {
	SetStatusLine(line string)
}

// LightEngine owns the render loop. It is the only component with
// external side effects; everything it submits is a pure function of
// elapsed time plus the sampled panic input.
type LightEngine struct {
	clock  *SessionClock
	safety *SafetyEnvelope
	output LightOutput
	panic  PanicInput
	tone   *ToneChip // nil when the tone companion is disabled
	diag   *DiagConsole

	sessionStart  float64
	frameInterval time.Duration
	lastFrame     time.Time // coarse clock, animation pacing only

	prevState   SafetyState
	panicActive bool
	haltedShown bool

	done chan struct{}
}

func NewLightEngine(clock *SessionClock, output LightOutput, panicIn PanicInput,
	tone *ToneChip, diag *DiagConsole) *LightEngine {
	return &LightEngine{
		clock:         clock,
		safety:        NewSafetyEnvelope(),
		output:        output,
		panic:         panicIn,
		tone:          tone,
		diag:          diag,
		frameInterval: FRAME_MS * time.Millisecond,
		prevState:     SAFETY_RAMPING_IN,
		done:          make(chan struct{}),
	}
}

// Shutdown asks the run loop to exit after the current iteration.
func (e *LightEngine) Shutdown() {
	select {
	case <-e.done:
	default:
		close(e.done)
	}
}

// Run drives the session until shutdown. Halted never exits the loop on
// its own: the terminal states idle with a bounded wait instead of
// rendering, and only an external shutdown (or device restart) ends them.
func (e *LightEngine) Run() {
	e.sessionStart = e.clock.Now()
	e.lastFrame = time.Now()

	for {
		select {
		case <-e.done:
			e.blackout(0)
			return
		default:
		}
		e.step()
	}
}

// step executes one orchestrator iteration. The panic input is sampled
// before anything else so the emergency path has the lowest latency in
// the system; while asserted there is no frame pacing at all.
func (e *LightEngine) step() {
	if e.panic.Asserted() {
		e.enterPanic()
		return
	}
	if e.panicActive {
		e.panicActive = false
		e.diag.Warnf("Panic input released. Session resumes.")
	}

	// Animation pacing on the coarse clock. Phase accuracy never
	// depends on this: every frame is recomputed from elapsed time.
	now := time.Now()
	if wait := e.frameInterval - now.Sub(e.lastFrame); wait > 0 {
		time.Sleep(wait)
		now = time.Now()
	}
	e.lastFrame = now

	elapsed := e.clock.Now() - e.sessionStart
	status := e.safety.Evaluate(elapsed)
	e.reportTransition(status)

	if status.State == SAFETY_HALTED {
		if !e.haltedShown {
			e.haltedShown = true
			e.blackout(0)
			e.diag.Warnf("Session timeout reached. Shutting down; restart the device for a new session.")
		}
		// Absorbing state: idle without pegging a core.
		time.Sleep(HALT_IDLE_MS * time.Millisecond)
		return
	}

	frame, finalL, finalR := renderFrame(elapsed, status)

	if e.tone != nil {
		e.tone.SetLevels(finalL, finalR)
	}
	e.publishStatus(status, finalL, finalR)

	_ = e.output.UpdateFrame(frame)
	e.output.SetBrightness(status.Brightness)
	_ = e.output.Show()
}

func (e *LightEngine) enterPanic() {
	if !e.panicActive {
		e.panicActive = true
		e.diag.Warnf("!!! PANIC STOP ACTIVATED !!!")
	}
	// The whole buffer is blacked before any transmission; no partial
	// application window exists.
	e.blackout(0)
	status := panicStatus(e.clock.Now() - e.sessionStart)
	e.prevState = status.State
	e.publishStatus(status, 0, 0)
}

func (e *LightEngine) blackout(brightness uint8) {
	var frame FrameBuffer
	frame.Blackout()
	if e.tone != nil {
		e.tone.Silence()
	}
	_ = e.output.UpdateFrame(frame)
	e.output.SetBrightness(brightness)
	_ = e.output.Show()
}

func (e *LightEngine) reportTransition(status SafetyStatus) {
	if status.State == e.prevState {
		return
	}
	switch {
	case status.State == SAFETY_STEADY && e.prevState == SAFETY_RAMPING_IN:
		e.diag.Printf("Ramp-in complete at t=%.1fs. Full amplitude.", status.Elapsed)
	case status.State == SAFETY_FADING_OUT && e.prevState != SAFETY_FADING_OUT:
		e.diag.Printf("Session limit reached at t=%.1fs. Fading out over %.0fs.",
			status.Elapsed, float64(FADE_OUT_SECONDS))
	}
	e.prevState = status.State
}

func (e *LightEngine) publishStatus(status SafetyStatus, finalL, finalR float64) {
	sc, ok := e.output.(StatusCapable)
	if !ok {
		return
	}
	sc.SetStatusLine(fmt.Sprintf("%s t=%.1fs mode=%s mul=%.2f L=%.2f R=%.2f",
		status.State, status.Elapsed, mandalaModeAt(status.Elapsed),
		status.Multiplier, finalL, finalR))
}

// renderFrame computes the complete frame for elapsed time t under the
// given safety verdict. It is a pure function: rendering the same
// instant twice yields identical output.
func renderFrame(t float64, status SafetyStatus) (FrameBuffer, float64, float64) {
	var fb FrameBuffer
	fb.Blackout()

	ampL := channelAmplitude(t, leftChannel)
	ampR := channelAmplitude(t, rightChannel)

	micro := 1.0
	if MICRO_ENABLED {
		micro = shimmer(t)
	}
	breathe := breathingEnvelope(t)

	finalL := clamp01(ampL * micro * status.Multiplier * breathe)
	finalR := clamp01(ampR * micro * status.Multiplier * breathe)

	// Left core: the first logical positions belong to the left
	// channel alone, animated by its local spiral band.
	for i := 0; i < CORE_LEDS; i++ {
		mask := spiralMask(i, t, 0.25+LEFT_FREQ_HZ*0.02)
		fb.setLogical(i, scaleColor(leftChannel.Color, finalL*mask))
	}

	// Right core: the last logical positions, right channel only.
	for i := NUM_LEDS - CORE_LEDS; i < NUM_LEDS; i++ {
		mask := spiralMask(i, t, 0.25+RIGHT_FREQ_HZ*0.02)
		fb.setLogical(i, scaleColor(rightChannel.Color, finalR*mask))
	}

	// Center anchors ride the averaged amplitude in amber. They
	// overwrite the innermost core positions: logical order starts at
	// the physical center of the coil.
	centerAmp := clamp01((finalL + finalR) * 0.5)
	anchor := scaleColor(centerColor, centerAmp)
	for i := 0; i < CENTER_ANCHORS; i++ {
		fb.setLogical(i, anchor)
	}

	// Mandala body with a position-dependent stereo mix, plus the
	// reflection echo off each finalized primary. The body never
	// touches the dedicated core positions; only the echo may spill
	// toward the outer ring.
	mode := mandalaModeAt(t)
	blend := bodyBlend()
	for pos := CORE_LEDS; pos < NUM_LEDS-CORE_LEDS; pos++ {
		mask := clamp01(bodyMask(mode, pos, t))

		stereoMix := 0.2
		if pos < NUM_LEDS/2 {
			stereoMix = 0.8
		}
		mixedAmp := clamp01(mask * (stereoMix*finalL + (1.0-stereoMix)*finalR))

		primary := scaleColor(blend, mixedAmp)
		fb.setLogical(pos, primary)
		fb.reflect(pos, primary)
	}

	return fb, finalL, finalR
}
