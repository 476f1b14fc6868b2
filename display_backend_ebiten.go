//go:build !headless && !ws281x

// display_backend_ebiten.go - On-screen LED ring simulator backend

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	simWindowSize = 480
	simRingRadius = 180.0
	simLEDRadius  = 12.0
)

// EbitenOutput renders the ring in a desktop window. SPACE held down
// asserts the panic input; C copies the current status line to the
// system clipboard.
type EbitenOutput struct {
	mu         sync.RWMutex
	frame      FrameBuffer
	staged     FrameBuffer
	brightness uint8
	statusLine string
	running    bool

	vsyncChan chan struct{}
	vsyncOnce sync.Once

	clipboardOnce sync.Once
	clipboardOK   bool
}

func newPlatformOutput() (LightOutput, PanicInput, error) {
	eo := &EbitenOutput{
		brightness: GLOBAL_BRIGHTNESS,
		vsyncChan:  make(chan struct{}),
	}
	return eo, eo, nil
}

func (eo *EbitenOutput) Start() error {
	eo.mu.Lock()
	if eo.running {
		eo.mu.Unlock()
		return nil
	}
	eo.running = true
	eo.mu.Unlock()

	ebiten.SetWindowSize(simWindowSize, simWindowSize)
	ebiten.SetWindowTitle("Theta Engine (c) 2025 - 2026 Zayn Otley")
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
		eo.mu.Lock()
		eo.running = false
		eo.mu.Unlock()
	}()

	// Wait for the first Draw call so the window is ready before the
	// render loop starts submitting frames.
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.mu.Lock()
	eo.running = false
	eo.mu.Unlock()
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) IsStarted() bool {
	eo.mu.RLock()
	defer eo.mu.RUnlock()
	return eo.running
}

func (eo *EbitenOutput) UpdateFrame(frame FrameBuffer) error {
	eo.mu.Lock()
	eo.staged = frame
	eo.mu.Unlock()
	return nil
}

func (eo *EbitenOutput) SetBrightness(level uint8) {
	eo.mu.Lock()
	eo.brightness = level
	eo.mu.Unlock()
}

func (eo *EbitenOutput) Show() error {
	eo.mu.Lock()
	eo.frame = eo.staged
	eo.mu.Unlock()
	return nil
}

// SetStatusLine publishes the orchestrator's one-line session status
// for the overlay and the clipboard shortcut.
func (eo *EbitenOutput) SetStatusLine(line string) {
	eo.mu.Lock()
	eo.statusLine = line
	eo.mu.Unlock()
}

// Asserted implements PanicInput: held SPACE plays the role of the
// momentary panic button. Sampled, never latched.
func (eo *EbitenOutput) Asserted() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

func (eo *EbitenOutput) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.copyStatusToClipboard()
	}
	return nil
}

func (eo *EbitenOutput) copyStatusToClipboard() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return
	}
	eo.mu.RLock()
	line := eo.statusLine
	eo.mu.RUnlock()
	clipboard.Write(clipboard.FmtText, []byte(line))
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.vsyncOnce.Do(func() { close(eo.vsyncChan) })

	eo.mu.RLock()
	frame := eo.frame
	brightness := eo.brightness
	line := eo.statusLine
	eo.mu.RUnlock()

	screen.Fill(color.RGBA{0x10, 0x10, 0x14, 0xff})

	scale := float64(brightness) / 255.0
	cx, cy := float64(simWindowSize)/2, float64(simWindowSize)/2
	for i := 0; i < NUM_LEDS; i++ {
		angle := 2 * math.Pi * float64(i) / NUM_LEDS
		x := float32(cx + simRingRadius*math.Cos(angle))
		y := float32(cy + simRingRadius*math.Sin(angle))
		c := color.RGBA{
			R: safeClampInt(float64(frame[i].R) * scale),
			G: safeClampInt(float64(frame[i].G) * scale),
			B: safeClampInt(float64(frame[i].B) * scale),
			A: 0xff,
		}
		vector.DrawFilledCircle(screen, x, y, simLEDRadius, c, true)
	}

	face := basicfont.Face7x13
	text.Draw(screen, line, face, 10, simWindowSize-24, color.RGBA{0xc0, 0xc0, 0xc0, 0xff})
	text.Draw(screen, "[SPACE] panic stop  [C] copy status", face, 10, simWindowSize-8,
		color.RGBA{0x70, 0x70, 0x70, 0xff})
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return simWindowSize, simWindowSize
}
