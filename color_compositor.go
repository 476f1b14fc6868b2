// color_compositor.go - RGB blending and the reflection echo for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

// RGB is one LED's color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

var rgbBlack = RGB{}

// FrameBuffer holds one frame in physical LED order. It is fully
// overwritten every frame; the only intra-frame accumulation is the
// intentional reflection echo.
type FrameBuffer [NUM_LEDS]RGB

// Blackout clears the whole buffer. Used for the safety paths, where
// the entire buffer must be dark before any transmission.
func (fb *FrameBuffer) Blackout() {
	for i := range fb {
		fb[i] = rgbBlack
	}
}

// setLogical writes a color at a logical render position, routing it
// through the spiral permutation to its physical LED.
func (fb *FrameBuffer) setLogical(pos int, c RGB) {
	fb[spiralOrder[pos]] = c
}

// addLogical saturate-adds a color at a logical render position.
func (fb *FrameBuffer) addLogical(pos int, c RGB) {
	idx := spiralOrder[pos]
	fb[idx] = RGB{
		R: qadd8(fb[idx].R, c.R),
		G: qadd8(fb[idx].G, c.G),
		B: qadd8(fb[idx].B, c.B),
	}
}

// qadd8 is a saturating 8-bit add: repeated reflections can never wrap
// a channel.
func qadd8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// safeClampInt converts an intermediate color computation to a channel
// value, saturating instead of wrapping.
func safeClampInt(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// scaleColor applies an amplitude in [0,1] to a base color.
func scaleColor(c RGB, amp float64) RGB {
	return RGB{
		R: safeClampInt(float64(c.R) * amp),
		G: safeClampInt(float64(c.G) * amp),
		B: safeClampInt(float64(c.B) * amp),
	}
}

// mixColor blends a toward b by weight w in [0,1].
func mixColor(a, b RGB, w float64) RGB {
	w = clamp01(w)
	return RGB{
		R: safeClampInt(float64(a.R)*(1.0-w) + float64(b.R)*w),
		G: safeClampInt(float64(a.G)*(1.0-w) + float64(b.G)*w),
		B: safeClampInt(float64(a.B)*(1.0-w) + float64(b.B)*w),
	}
}

// bodyBlend is the fixed palette for the mandala body: amber pulled 60%
// toward the midpoint of the two hemisphere colors.
func bodyBlend() RGB {
	return mixColor(centerColor, mixColor(leftColor, rightColor, 0.5), 0.6)
}

// reflect adds a decayed copy of a finalized primary color further
// along the render order. The echo is computed from the primary alone
// and never feeds later reflections, so energy cannot accumulate
// across positions.
func (fb *FrameBuffer) reflect(pos int, primary RGB) {
	echoPos := pos + REFLECTION_OFFSET
	if echoPos >= NUM_LEDS {
		return
	}
	fb.addLogical(echoPos, RGB{
		R: safeClampInt(float64(primary.R) * REFLECTION_DECAY),
		G: safeClampInt(float64(primary.G) * REFLECTION_DECAY),
		B: safeClampInt(float64(primary.B) * REFLECTION_DECAY),
	})
}
