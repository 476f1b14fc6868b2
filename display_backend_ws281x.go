//go:build ws281x && !headless

// display_backend_ws281x.go - WS281x addressable LED hardware backend

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"sync"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// WS281xOutput drives the physical ring through the rpi-ws281x PWM
// peripheral. Requires root and the ws281x build tag (cgo).
type WS281xOutput struct {
	mu      sync.Mutex
	dev     *ws2811.WS2811
	staged  FrameBuffer
	started bool
}

func newPlatformOutput() (LightOutput, PanicInput, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = WS281X_PIN
	opt.Channels[0].LedCount = NUM_LEDS
	opt.Channels[0].Brightness = GLOBAL_BRIGHTNESS
	opt.Channels[0].StripeType = ws2811.StripGRB

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, nil, &LightError{Operation: "init", Details: "ws281x device allocation", Err: err}
	}
	return &WS281xOutput{dev: dev}, &gpioPanicInput{}, nil
}

func (wo *WS281xOutput) Start() error {
	wo.mu.Lock()
	defer wo.mu.Unlock()
	if wo.started {
		return nil
	}
	if err := wo.dev.Init(); err != nil {
		return &LightError{Operation: "start", Details: "ws281x hardware init", Err: err}
	}
	wo.started = true
	return nil
}

func (wo *WS281xOutput) Stop() error {
	wo.mu.Lock()
	defer wo.mu.Unlock()
	if !wo.started {
		return nil
	}
	wo.dev.Fini()
	wo.started = false
	return nil
}

func (wo *WS281xOutput) Close() error {
	return wo.Stop()
}

func (wo *WS281xOutput) IsStarted() bool {
	wo.mu.Lock()
	defer wo.mu.Unlock()
	return wo.started
}

func (wo *WS281xOutput) UpdateFrame(frame FrameBuffer) error {
	wo.mu.Lock()
	wo.staged = frame
	wo.mu.Unlock()
	return nil
}

func (wo *WS281xOutput) SetBrightness(level uint8) {
	wo.mu.Lock()
	defer wo.mu.Unlock()
	if wo.started {
		wo.dev.SetBrightness(0, int(level))
	}
}

func (wo *WS281xOutput) Show() error {
	wo.mu.Lock()
	defer wo.mu.Unlock()
	if !wo.started {
		return &LightError{Operation: "show", Details: "backend not started"}
	}
	leds := wo.dev.Leds(0)
	for i := 0; i < NUM_LEDS && i < len(leds); i++ {
		c := wo.staged[i]
		leds[i] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	if err := wo.dev.Render(); err != nil {
		return &LightError{Operation: "show", Details: "ws281x render", Err: err}
	}
	return nil
}

// gpioPanicInput samples the panic button through sysfs. The button
// pulls the pin to ground, so '0' means asserted. Debounce is the
// pull-up resistor's job, not software's.
type gpioPanicInput struct{}

func (g *gpioPanicInput) Asserted() bool {
	data, err := os.ReadFile(fmt.Sprintf("/sys/class/gpio/gpio%d/value", PANIC_GPIO))
	if err != nil || len(data) == 0 {
		return false
	}
	return data[0] == '0'
}
