package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell"
	"github.com/prometheus/client_golang/prometheus"

	"ContribPong/core"
	"ContribPong/input"
	"ContribPong/logger"
	"ContribPong/loop"
	"ContribPong/metrics"
	"ContribPong/render"
)

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

func initScreen(bg tcell.Color) (tcell.Screen, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf(logger.ScreenInitFailedMsg, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf(logger.ScreenInitFailedMsg, err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(bg).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}

func start() error {
	cfg := core.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	bg := cfg.Palette.Background

	screen, err := initScreen(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	if err != nil {
		return err
	}
	defer screen.Fini()

	game := core.NewGame(cfg, core.NewRandom(uint64(time.Now().UnixNano())))

	//鍵盤事件由另一個goroutine監聽，主迴圈每幀取一次快照
	keyboard := input.NewKeyboard(input.DefaultHold)
	keyboard.Listen(screen)

	scene := render.NewScene(render.NewTerminal(screen, cfg.FieldWidth, cfg.FieldHeight), cfg)
	m := metrics.New(prometheus.NewRegistry())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	gameLoop := loop.New(game, keyboard, scene, loop.NewPacer(cfg.FrameInterval()), m)
	err = gameLoop.Run(ctx)

	s := m.Summary()
	logger.Log.Info(fmt.Sprintf(logger.SessionSummaryMsg,
		s.Frames, s.LeftHits, s.RightHits, s.LeftGoals, s.RightGoals, s.Resets))
	if err != nil {
		return fmt.Errorf(logger.LoopFailedMsg, err)
	}
	return nil
}
