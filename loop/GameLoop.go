// Package loop drives a core.Game one fixed-size frame at a time.
package loop

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"ContribPong/core"
	"ContribPong/logger"
	"ContribPong/metrics"
)

// Controller produces the held-key snapshot for a frame.
type Controller interface {
	Snapshot() core.Input
}

// Renderer draws and presents one full frame.
type Renderer interface {
	Render(g *core.Game) error
}

// Pacer blocks until the next frame may start. *rate.Limiter satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a limiter releasing one frame per interval. With a burst
// of one a slow frame is never made up for later: play just runs slower.
func NewPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// GameLoop is single threaded: input, simulation and rendering all run on the
// goroutine that calls Run, and the pacer wait is its only blocking point.
type GameLoop struct {
	game     *core.Game
	input    Controller
	renderer Renderer
	pacer    Pacer
	metrics  *metrics.Metrics

	running bool
	frames  int
}

func New(game *core.Game, input Controller, renderer Renderer, pacer Pacer, m *metrics.Metrics) *GameLoop {
	return &GameLoop{
		game:     game,
		input:    input,
		renderer: renderer,
		pacer:    pacer,
		metrics:  m,
	}
}

// Run plays frames until a quit request or ctx is done. The frame in flight
// when either happens is completed first. A render failure stops the loop
// and is returned.
func (l *GameLoop) Run(ctx context.Context) error {
	cfg := l.game.Config
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, cfg.FieldWidth, cfg.FieldHeight, cfg.FrameRate))

	l.running = true
	for l.running {
		if err := l.Frame(ctx); err != nil {
			return err
		}
	}

	logger.Log.Info(fmt.Sprintf(logger.SessionEndMsg, l.game.Match.LeftScore, l.game.Match.RightScore, l.frames))
	return nil
}

// Frame runs one iteration: poll, update, render, pace.
func (l *GameLoop) Frame(ctx context.Context) error {
	start := time.Now()

	if ctx.Err() != nil {
		l.running = false
	}

	in := l.input.Snapshot()
	if in.Quit {
		logger.Log.Info(logger.QuitMsg)
		l.running = false
	}
	if in.Reset {
		logger.Log.Info(fmt.Sprintf(logger.ResetMsg, l.game.Match.LeftScore, l.game.Match.RightScore))
		l.game.Reset()
		l.metrics.Resets.Inc()
	}

	ev := l.game.Step(in)
	l.record(ev)

	if err := l.renderer.Render(l.game); err != nil {
		return fmt.Errorf("render frame %d: %w", l.frames, err)
	}
	l.frames++
	l.metrics.ObserveFrame(time.Since(start))

	if !l.running {
		return nil
	}
	if err := l.pacer.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			l.running = false
			return nil
		}
		return fmt.Errorf("pace frame %d: %w", l.frames, err)
	}
	return nil
}

func (l *GameLoop) record(ev core.Events) {
	l.metrics.Observe(ev)

	if ev.LeftHit {
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, core.LeftSide, l.game.Ball.DY))
	}
	if ev.RightHit {
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, core.RightSide, l.game.Ball.DY))
	}
	if ev.Scorer != core.NoSide {
		logger.Log.Info(fmt.Sprintf(logger.GoalMsg, ev.Scorer, l.game.Match.LeftScore, l.game.Match.RightScore))
	}
}

func (l *GameLoop) Running() bool {
	return l.running
}

func (l *GameLoop) Frames() int {
	return l.frames
}
