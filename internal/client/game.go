package client

import (
	"log/slog"
	"time"

	"termpong/internal/pong"
	"termpong/internal/renderer"
)

type LoopState int

const (
	Running LoopState = iota
	Closed
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Closed:
		return "closed"
	}
	return "unknown"
}

type Stats struct {
	Frames  int
	Elapsed time.Duration
}

func (s Stats) MeanFrameTime() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Frames)
}

type game struct {
	maxFps int
	now    func() time.Time
	sleep  func(time.Duration)
	logger *slog.Logger
}

type Option func(*game)

// WithMaxFps caps the frame rate. Zero leaves the loop unthrottled.
func WithMaxFps(fps int) Option {
	return func(g *game) {
		g.maxFps = fps
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *game) {
		g.logger = logger
	}
}

// WithClock replaces the time source used for frame pacing and stats.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(g *game) {
		g.now = now
		g.sleep = sleep
	}
}

// Frame runs one iteration of the loop. Nothing is drawn once the window has
// been closed by this frame's input.
func Frame(w renderer.Window, state pong.GameState) (pong.GameState, LoopState) {
	w.Clear(pong.ClearColor)

	state = pong.CollectInput(w, state)
	state = pong.NextState(state, w)

	if !w.IsOpen() {
		return state, Closed
	}

	w.Draw(state.Ball().Shape)
	for _, paddle := range state.Paddles() {
		w.Draw(paddle.Sprite)
	}
	w.Display()

	return state, Running
}

// Run drives frames until the window closes and returns the last snapshot.
func Run(w renderer.Window, state pong.GameState, opts ...Option) (pong.GameState, Stats) {
	g := &game{
		now:    time.Now,
		sleep:  time.Sleep,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	var frameTime time.Duration
	if g.maxFps > 0 {
		frameTime = time.Second / time.Duration(g.maxFps)
	}

	stats := Stats{}
	start := g.now()
	loop := Running
	if !w.IsOpen() {
		loop = Closed
	}

	for loop == Running {
		frameStart := g.now()
		state, loop = Frame(w, state)
		if loop == Running {
			stats.Frames++
			g.waitForFpsLock(frameStart, frameTime)
		}
	}

	stats.Elapsed = g.now().Sub(start)
	g.logger.Debug("frame loop closed",
		slog.Int("frames", stats.Frames),
		slog.Duration("elapsed", stats.Elapsed),
		slog.Duration("frame_time", stats.MeanFrameTime()))

	return state, stats
}

func (g *game) waitForFpsLock(frameStart time.Time, frameTime time.Duration) {
	if frameTime <= 0 {
		return
	}
	if spare := frameTime - g.now().Sub(frameStart); spare > 0 {
		g.sleep(spare)
	}
}
