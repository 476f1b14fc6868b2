//go:build !headless

// tone_backend_oto.go - OTO v3 tone output implementation

/*
(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/ThetaEngine
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

type OtoTonePlayer struct {
	ctx       *oto.Context
	player    *oto.Player
	chip      atomic.Pointer[ToneChip] // Atomic for lock-free Read()
	sampleBuf []float32                // Pre-allocated sample buffer
	started   bool
	mutex     sync.Mutex // Only for setup/control operations
}

func NewToneOutput(sampleRate int, chip *ToneChip) (ToneOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	tp := &OtoTonePlayer{
		ctx:       ctx,
		sampleBuf: make([]float32, 4096),
	}
	tp.chip.Store(chip)
	tp.player = ctx.NewPlayer(tp)
	return tp, nil
}

func (tp *OtoTonePlayer) Read(p []byte) (n int, err error) {
	chip := tp.chip.Load()
	if chip == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4
	if len(tp.sampleBuf) < numSamples {
		tp.sampleBuf = make([]float32, numSamples)
	}
	samples := tp.sampleBuf[:numSamples]

	for i := 0; i < numSamples; i++ {
		samples[i] = chip.GenerateSample()
	}

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (tp *OtoTonePlayer) Start() {
	tp.mutex.Lock()
	defer tp.mutex.Unlock()

	if !tp.started && tp.player != nil {
		tp.player.Play()
		tp.started = true
	}
}

func (tp *OtoTonePlayer) Stop() {
	tp.mutex.Lock()
	defer tp.mutex.Unlock()

	if tp.started && tp.player != nil {
		tp.player.Close()
		tp.started = false
	}
}

func (tp *OtoTonePlayer) Close() {
	tp.Stop()
	tp.mutex.Lock()
	defer tp.mutex.Unlock()
	tp.player = nil
}

func (tp *OtoTonePlayer) IsStarted() bool {
	tp.mutex.Lock()
	defer tp.mutex.Unlock()
	return tp.started
}
