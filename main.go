// main.go - Entry point for the Theta Engine

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func boilerPlate() {
	fmt.Println("Theta Engine - visual theta entrainment for a 20-LED ring")
	fmt.Println("(c) 2025 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/ThetaEngine")
	fmt.Println("License: GPLv3 or later")
	fmt.Println()
	fmt.Println("WARNING: do not use with epilepsy, migraines or photosensitivity.")
	fmt.Println("Not a medical or therapeutic product. Consult a professional before use.")
	fmt.Println()
}

func main() {
	boilerPlate()
	diag := NewDiagConsole()

	clock := NewSessionClock()
	if err := clock.Start(); err != nil {
		// No recovery path from a dead time base; the render loop
		// must never run without it.
		diag.Fatalf("Fatal: hardware tick clock failed to start: %v", err)
		os.Exit(1)
	}
	defer clock.Stop()
	diag.Printf("Tick clock running (%dus period)", TICK_INTERVAL_US)

	output, panicIn, err := NewLightOutput()
	if err != nil {
		diag.Fatalf("Fatal: light output unavailable: %v", err)
		os.Exit(1)
	}
	if err := output.Start(); err != nil {
		diag.Fatalf("Fatal: light output failed to start: %v", err)
		os.Exit(1)
	}
	defer output.Close()

	var tone *ToneChip
	if TONE_ENABLED {
		tone, err = NewToneChip()
		if err != nil {
			// The light session is the product; audio is a companion.
			diag.Warnf("Tone output unavailable (%v); continuing light-only", err)
			tone = nil
		} else {
			tone.Start()
			defer tone.Stop()
		}
	}

	diag.Printf("Left frequency:  %.2f Hz", float64(LEFT_FREQ_HZ))
	diag.Printf("Right frequency: %.2f Hz", float64(RIGHT_FREQ_HZ))
	diag.Printf("Ramp-in: %.0fs  Session cap: %.0fs  Fade-out: %.0fs",
		float64(RAMP_IN_SECONDS), float64(MAX_SESSION_SECONDS), float64(FADE_OUT_SECONDS))
	diag.Printf("System ready. Session started.")

	engine := NewLightEngine(clock, output, panicIn, tone, diag)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		diag.Warnf("Shutdown requested.")
		engine.Shutdown()
	}()

	engine.Run()
}
