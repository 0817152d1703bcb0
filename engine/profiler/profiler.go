package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks render frame rate, frame time, and heap usage for the
// visualizer host. Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	maxFrame       time.Duration
	lastFrameStart time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastTime:       now,
		lastFrameStart: now,
		updateInterval: time.Second,
	}
}

// Tick should be called once per rendered frame. Tracks frame timing
// and logs FPS, worst frame time, and heap usage when the update
// interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()
	frame := now.Sub(p.lastFrameStart)
	p.lastFrameStart = now
	if frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.frameCount++

	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	avgMs := elapsed.Seconds() * 1000 / float64(p.frameCount)
	maxMs := float64(p.maxFrame.Microseconds()) / 1000

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[profiler] FPS: %.2f | frame avg: %.2f ms, max: %.2f ms | heap: %.2f MB",
		fps, avgMs, maxMs, heapMB)

	p.frameCount = 0
	p.maxFrame = 0
	p.lastTime = now
	return true
}
