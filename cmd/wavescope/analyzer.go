package main

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/Carmen-Shannon/wavescope-go/engine"
)

// analyzer periodically snapshots the synth's recent samples, runs a
// windowed FFT, converts the magnitudes to the dB-like [-100, 0] scale
// the visualizer expects, and pushes the frame via UpdateAudio. The FFT
// work runs on a worker pool so a slow transform never blocks the
// ticker goroutine.
type analyzer struct {
	synth   *synth
	vis     engine.Visualizer
	fftSize int

	pool worker.DynamicWorkerPool

	done chan struct{}
}

// newAnalyzer creates an analyzer sampling from s into vis with the
// given FFT window size.
func newAnalyzer(s *synth, vis engine.Visualizer, fftSize int) *analyzer {
	return &analyzer{
		synth:   s,
		vis:     vis,
		fftSize: fftSize,
		pool:    worker.NewDynamicWorkerPool(1, 8, 1*time.Second),
		done:    make(chan struct{}),
	}
}

// Start launches the ~60 Hz analysis loop. Stop terminates it.
func (a *analyzer) Start() {
	go a.loop()
}

// Stop terminates the analysis loop. Pool workers reclaim themselves
// after the idle timeout.
func (a *analyzer) Stop() {
	close(a.done)
}

func (a *analyzer) loop() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	taskID := 0
	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
		}

		taskID++
		a.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				a.analyzeOnce()
				return nil, nil
			},
		})
	}
}

// analyzeOnce performs one windowed FFT over the most recent samples
// and delivers the resulting frame to the visualizer.
func (a *analyzer) analyzeOnce() {
	timeFrame := make([]float32, a.fftSize)
	a.synth.Recent(timeFrame)

	samples := make([]float64, a.fftSize)
	for i, v := range timeFrame {
		samples[i] = float64(v)
	}
	window.Apply(samples, window.Hann)

	spectrum := fft.FFTReal(samples)

	// Magnitudes to dBFS clamped to [-100, 0], matching the scale of a
	// browser analyser node. Only the first half of the spectrum is
	// meaningful for real input.
	bins := a.fftSize / 2
	freqFrame := make([]float32, bins)
	scale := 2.0 / float64(a.fftSize)
	for i := 0; i < bins; i++ {
		mag := cmplx.Abs(spectrum[i]) * scale
		db := -100.0
		if mag > 0 {
			db = 20 * math.Log10(mag)
		}
		if db < -100 {
			db = -100
		} else if db > 0 {
			db = 0
		}
		freqFrame[i] = float32(db)
	}

	a.vis.UpdateAudio(freqFrame, timeFrame)
}
