package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/Carmen-Shannon/wavescope-go/common"
	"github.com/Carmen-Shannon/wavescope-go/engine"
	"github.com/Carmen-Shannon/wavescope-go/engine/profiler"
	"github.com/Carmen-Shannon/wavescope-go/engine/renderer"
	"github.com/Carmen-Shannon/wavescope-go/engine/window"
)

const fftSize = 2048

func main() {
	width := flag.Int("width", 1024, "window width in pixels")
	height := flag.Int("height", 640, "window height in pixels")
	mode := flag.Uint("mode", 0, "initial wave mode (0-4)")
	toneHz := flag.Float64("tone", 110.0, "base frequency of the generated tone in Hz")
	mute := flag.Bool("mute", false, "disable audio playback (analysis still runs)")
	profile := flag.Bool("profile", false, "log FPS and heap stats once per second")
	software := flag.Bool("software", false, "force a software (fallback) GPU adapter")
	uncapped := flag.Bool("uncapped", false, "present without vsync")
	flag.Parse()

	win := window.NewWindow(
		window.WithTitle("Wavescope"),
		window.WithWidth(*width),
		window.WithHeight(*height),
	)
	defer win.Close()

	rendererOpts := []renderer.RendererBuilderOption{}
	if *software {
		rendererOpts = append(rendererOpts, renderer.WithForceSoftwareRenderer(true))
	}
	if *uncapped {
		rendererOpts = append(rendererOpts, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}

	vis := engine.NewVisualizer(
		engine.WithFFTSize(fftSize),
		engine.WithRendererOptions(rendererOpts...),
	)
	if err := vis.Initialize(win); err != nil {
		log.Fatalf("[main] failed to initialize visualizer: %v", err)
	}
	vis.SetMode(uint32(*mode))

	// Ring holds ~4 FFT windows so the analyzer always has a full,
	// recent window even if playback reads ahead of the ticker.
	tone := newSynth(*toneHz, fftSize*4)
	if err := startAudio(tone, *mute); err != nil {
		log.Printf("[main] audio unavailable, continuing muted: %v", err)
		go pumpMuted(tone)
	}

	anl := newAnalyzer(tone, vis, fftSize)
	anl.Start()
	defer anl.Stop()

	bindControls(win, vis)

	var prof *profiler.Profiler
	if *profile {
		prof = profiler.NewProfiler()
	}

	start := time.Now()
	win.SetUpdateCallback(func() {
		timestampMs := float64(time.Since(start).Microseconds()) / 1000.0
		if err := vis.Render(timestampMs); err != nil {
			log.Printf("[main] render: %v", err)
		}
		if prof != nil {
			prof.Tick()
		}
	})
	win.SetResizeCallback(func(w, h int) {
		_ = vis.Resize(w, h)
	})

	printControls()
	win.ProcessMessages()
}

// startAudio begins tone playback through the default output device.
// When muted the synth is advanced in real time without a device so the
// analysis path still sees a live signal.
func startAudio(tone *synth, mute bool) error {
	if mute {
		go pumpMuted(tone)
		return nil
	}

	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}

	go func() {
		<-ready
		player := ctx.NewPlayer(tone)
		player.Play()
		log.Printf("[main] audio playback started at %d Hz", sampleRate)
	}()
	return nil
}

// pumpMuted advances the synth at real-time rate so Recent keeps
// returning fresh samples without a playback device pulling them.
func pumpMuted(tone *synth) {
	const interval = 10 * time.Millisecond
	samplesPerTick := sampleRate * int(interval) / int(time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		tone.pump(samplesPerTick)
	}
}

// bindControls wires keyboard and scroll input to the wave parameters.
func bindControls(win window.Window, vis engine.Visualizer) {
	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.Key1, common.Key2, common.Key3, common.Key4, common.Key5:
			vis.SetMode(keyCode - common.Key1)
		case common.KeyUp:
			vis.SetAmplitude(vis.Params().Amplitude + 0.1)
		case common.KeyDown:
			vis.SetAmplitude(vis.Params().Amplitude - 0.1)
		case common.KeyRight:
			vis.SetSpeed(vis.Params().Speed + 0.1)
		case common.KeyLeft:
			vis.SetSpeed(vis.Params().Speed - 0.1)
		case common.KeyH:
			vis.SetHue(vis.Params().Hue + 15.0)
		}
	})
	win.SetScrollCallback(func(delta float32) {
		vis.SetFrequency(vis.Params().Frequency + delta*0.5)
	})
}

func printControls() {
	log.Println("[main] controls: 1-5 wave mode | up/down amplitude | left/right speed | scroll frequency | H hue | esc quit")
}
