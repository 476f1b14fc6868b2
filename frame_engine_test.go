// frame_engine_test.go - Tests for the per-frame orchestration

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"testing"
	"time"
)

// recorderOutput captures everything an engine submits, standing in for
// the physical sink.
type recorderOutput struct {
	staged     FrameBuffer
	shown      []FrameBuffer
	brightness []uint8
	status     []string
	started    bool
}

func (r *recorderOutput) Start() error    { r.started = true; return nil }
func (r *recorderOutput) Stop() error     { r.started = false; return nil }
func (r *recorderOutput) Close() error    { return r.Stop() }
func (r *recorderOutput) IsStarted() bool { return r.started }

func (r *recorderOutput) UpdateFrame(frame FrameBuffer) error {
	r.staged = frame
	return nil
}

func (r *recorderOutput) SetBrightness(level uint8) {
	r.brightness = append(r.brightness, level)
}

func (r *recorderOutput) Show() error {
	r.shown = append(r.shown, r.staged)
	return nil
}

func (r *recorderOutput) SetStatusLine(line string) {
	r.status = append(r.status, line)
}

func (r *recorderOutput) lastShown() FrameBuffer {
	return r.shown[len(r.shown)-1]
}

// stubPanic is a settable emergency input.
type stubPanic struct{ on bool }

func (s *stubPanic) Asserted() bool { return s.on }

func newTestEngine() (*LightEngine, *recorderOutput, *stubPanic, *SessionClock) {
	out := &recorderOutput{}
	pin := &stubPanic{}
	clock := NewSessionClock()
	eng := NewLightEngine(clock, out, pin, nil, NewDiagConsole())
	eng.frameInterval = 0 // tests drive iterations directly
	return eng, out, pin, clock
}

func allBlack(fb FrameBuffer) bool {
	for _, c := range fb {
		if c != rgbBlack {
			return false
		}
	}
	return true
}

func TestRenderFrame_Idempotent(t *testing.T) {
	se := NewSafetyEnvelope()
	for _, tt := range []float64{0.5, 42.0, 200.0, 1234.5} {
		status := se.Evaluate(tt)
		a, al, ar := renderFrame(tt, status)
		b, bl, br := renderFrame(tt, status)
		if a != b || al != bl || ar != br {
			t.Fatalf("renderFrame not idempotent at t=%f", tt)
		}
	}
}

func TestRenderFrame_BlackAtSessionStart(t *testing.T) {
	// Multiplier is exactly 0 at t=0, so every LED must be dark.
	status := NewSafetyEnvelope().Evaluate(0)
	fb, finalL, finalR := renderFrame(0, status)
	if !allBlack(fb) {
		t.Error("frame not black at t=0 with zero multiplier")
	}
	if finalL != 0 || finalR != 0 {
		t.Errorf("channel amplitudes not zero at t=0: L=%f R=%f", finalL, finalR)
	}
}

func TestRenderFrame_CoreChannelSeparation(t *testing.T) {
	status := NewSafetyEnvelope().Evaluate(900) // steady, full amplitude
	fb, _, _ := renderFrame(900.25, status)

	// The outermost logical position on each side is untouched by
	// anchors, body and echo: it must carry a pure channel hue.
	leftLED := fb[spiralOrder[CORE_LEDS-1]]
	if leftLED != rgbBlack {
		// Warm hue: red dominates blue, proportions of leftColor.
		if leftLED.R <= leftLED.B {
			t.Errorf("left core LED not warm: %+v", leftLED)
		}
	}
	rightLED := fb[spiralOrder[NUM_LEDS-1]]
	if rightLED != rgbBlack {
		if rightLED.B <= rightLED.R {
			t.Errorf("right core LED not cool: %+v", rightLED)
		}
	}
}

func TestRenderFrame_CenterAnchorsMatch(t *testing.T) {
	status := NewSafetyEnvelope().Evaluate(900)
	fb, _, _ := renderFrame(900.0, status)

	a := fb[spiralOrder[0]]
	b := fb[spiralOrder[1]]
	if a != b {
		t.Errorf("center anchors differ: %+v vs %+v", a, b)
	}
}

func TestEngine_PanicForcesBlackWithinOneFrame(t *testing.T) {
	for _, elapsed := range []float64{0.5, 90, 900, 1805} {
		eng, out, pin, _ := newTestEngine()
		eng.sessionStart = -elapsed // puts the session at the target time

		eng.step() // renders normally first
		pin.on = true
		eng.step()

		if got := out.lastShown(); !allBlack(got) {
			t.Fatalf("panic at t=%.1f did not black the frame: %+v", elapsed, got)
		}
	}
}

func TestEngine_PanicReleaseResumes(t *testing.T) {
	eng, out, pin, _ := newTestEngine()
	eng.sessionStart = -900 // steady state

	pin.on = true
	eng.step()
	if !allBlack(out.lastShown()) {
		t.Fatal("panic frame not black")
	}

	pin.on = false
	eng.step()
	if allBlack(out.lastShown()) {
		t.Fatal("render did not resume after panic release")
	}
}

func TestEngine_HaltedStopsRendering(t *testing.T) {
	eng, out, pin, _ := newTestEngine()
	_ = pin
	eng.sessionStart = -(MAX_SESSION_SECONDS + FADE_OUT_SECONDS + 10)

	start := time.Now()
	eng.step()
	if time.Since(start) < HALT_IDLE_MS*time.Millisecond/2 {
		t.Error("halted step did not idle")
	}

	if !allBlack(out.lastShown()) {
		t.Fatal("halt did not black the frame")
	}
	shownBefore := len(out.shown)

	// Further steps stay dark and submit nothing new.
	eng.step()
	eng.step()
	if len(out.shown) != shownBefore {
		t.Errorf("halted engine kept submitting frames: %d -> %d",
			shownBefore, len(out.shown))
	}
}

func TestEngine_HaltWinsOverPanicRelease(t *testing.T) {
	// A session past its cap must stay dark even through a panic
	// assert/release cycle: timeout is one-way, panic is not.
	eng, out, pin, _ := newTestEngine()
	eng.sessionStart = -(MAX_SESSION_SECONDS + FADE_OUT_SECONDS + 10)

	eng.step() // latches Halted
	pin.on = true
	eng.step()
	pin.on = false
	eng.step()

	if !allBlack(out.lastShown()) {
		t.Fatal("halted session resumed after panic release")
	}
}

func TestEngine_BrightnessFollowsSafetyScalar(t *testing.T) {
	eng, out, _, _ := newTestEngine()
	eng.sessionStart = -900

	eng.step()
	if n := len(out.brightness); n == 0 || out.brightness[n-1] != GLOBAL_BRIGHTNESS {
		t.Errorf("steady brightness = %v, want %d", out.brightness, GLOBAL_BRIGHTNESS)
	}

	eng2, out2, _, _ := newTestEngine()
	eng2.sessionStart = -(MAX_SESSION_SECONDS + 5)
	eng2.step()
	n := len(out2.brightness)
	if n == 0 || out2.brightness[n-1] >= GLOBAL_BRIGHTNESS {
		t.Errorf("fading brightness = %v, want below %d", out2.brightness, GLOBAL_BRIGHTNESS)
	}
}

func TestEngine_StatusLinePublished(t *testing.T) {
	eng, out, _, _ := newTestEngine()
	eng.sessionStart = -900
	eng.step()
	if len(out.status) == 0 {
		t.Fatal("no status line published to a StatusCapable backend")
	}
}
