// color_compositor_test.go - Tests for RGB blending and the reflection echo

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import "testing"

func TestQadd8_Saturates(t *testing.T) {
	cases := []struct {
		a, b, want uint8
	}{
		{0, 0, 0},
		{100, 100, 200},
		{200, 100, 255},
		{255, 255, 255},
		{255, 1, 255},
		{254, 1, 255},
	}
	for _, c := range cases {
		if got := qadd8(c.a, c.b); got != c.want {
			t.Errorf("qadd8(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSafeClampInt_Bounds(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{127.9, 127},
		{255, 255},
		{300, 255},
		{1e9, 255},
	}
	for _, c := range cases {
		if got := safeClampInt(c.in); got != c.want {
			t.Errorf("safeClampInt(%f) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMixColor_EndpointsAndMidpoint(t *testing.T) {
	a := RGB{255, 120, 40}
	b := RGB{40, 130, 255}

	if got := mixColor(a, b, 0); got != a {
		t.Errorf("mixColor(w=0) = %+v, want %+v", got, a)
	}
	if got := mixColor(a, b, 1); got != b {
		t.Errorf("mixColor(w=1) = %+v, want %+v", got, b)
	}
	mid := mixColor(a, b, 0.5)
	if mid.R != 147 || mid.G != 125 || mid.B != 147 {
		t.Errorf("mixColor midpoint = %+v", mid)
	}
}

func TestScaleColor_ZeroAndFull(t *testing.T) {
	c := RGB{200, 100, 50}
	if got := scaleColor(c, 0); got != rgbBlack {
		t.Errorf("scaleColor(0) = %+v, want black", got)
	}
	if got := scaleColor(c, 1); got != c {
		t.Errorf("scaleColor(1) = %+v, want %+v", got, c)
	}
	half := scaleColor(c, 0.5)
	if half.R != 100 || half.G != 50 || half.B != 25 {
		t.Errorf("scaleColor(0.5) = %+v", half)
	}
}

func TestReflect_NeverOverflows(t *testing.T) {
	var fb FrameBuffer
	fb.Blackout()

	// Pre-saturate the echo target, then reflect a full-white primary
	// onto it. Saturating adds must pin every channel at 255.
	const pos = 5
	echoIdx := spiralOrder[pos+REFLECTION_OFFSET]
	fb[echoIdx] = RGB{250, 250, 250}

	fb.reflect(pos, RGB{255, 255, 255})

	if fb[echoIdx] != (RGB{255, 255, 255}) {
		t.Errorf("echo overflowed: %+v", fb[echoIdx])
	}
}

func TestReflect_DecaysPrimary(t *testing.T) {
	var fb FrameBuffer
	fb.Blackout()

	fb.reflect(3, RGB{200, 100, 0})
	echo := fb[spiralOrder[3+REFLECTION_OFFSET]]

	if echo.R != 70 || echo.G != 35 || echo.B != 0 { // 0.35 decay
		t.Errorf("echo = %+v, want {70 35 0}", echo)
	}
}

func TestReflect_OffEndIsDropped(t *testing.T) {
	var fb FrameBuffer
	fb.Blackout()
	before := fb

	fb.reflect(NUM_LEDS-1, RGB{255, 255, 255})
	if fb != before {
		t.Error("reflection past the end of the ring mutated the buffer")
	}
}

func TestFrameBuffer_LogicalRouting(t *testing.T) {
	var fb FrameBuffer
	fb.Blackout()

	c := RGB{1, 2, 3}
	fb.setLogical(0, c)
	if fb[spiralOrder[0]] != c {
		t.Errorf("setLogical did not route through the spiral permutation")
	}
	for i := range fb {
		if uint8(i) != spiralOrder[0] && fb[i] != rgbBlack {
			t.Errorf("setLogical leaked to physical index %d", i)
		}
	}
}
