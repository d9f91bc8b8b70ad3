package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"termpong/internal/ansii"
	"termpong/internal/assets"
	"termpong/internal/client"
	"termpong/internal/config"
	"termpong/internal/logging"
	"termpong/internal/pong"
	"termpong/internal/renderer"
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Fatal: opening log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := logging.New(logFile, cfg.LogLevel)
	slog.SetDefault(logger)

	// Some platforms refuse to create windows off the initial thread while
	// others refuse on it; the game gets a thread of its own either way.
	done := make(chan error)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		done <- run(cfg, logger)
	}()

	err = <-done
	if err != nil {
		logger.Error("session failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg config.Configuration, logger *slog.Logger) error {
	store, err := assets.Load(cfg.AssetDir)
	if err != nil {
		return err
	}

	paddles, err := pong.NewPaddles(store.Textures())
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ball := pong.NewBall(rand.New(rand.NewSource(seed)))

	window, cleanup, err := createWindow(cfg.Backend)
	if err != nil {
		return err
	}
	defer cleanup()

	state := pong.NewGameState(paddles, cfg.Player, ball)
	logger.Info("session started",
		slog.String("backend", string(cfg.Backend)),
		slog.String("player", state.PlayerId().String()),
		slog.Uint64("seed", seed))

	_, stats := client.Run(window, state, client.WithMaxFps(cfg.MaxFps), client.WithLogger(logger))
	logger.Info("session closed",
		slog.Int("frames", stats.Frames),
		slog.Duration("frame_time", stats.MeanFrameTime()))

	// Paddle sprites reference textures owned by the store.
	runtime.KeepAlive(store)
	return nil
}

func createWindow(backend config.Backend) (renderer.Window, func(), error) {
	switch backend {
	case config.BackendANSI:
		prev, err := ansii.MakeTermRaw()
		if err != nil {
			return nil, nil, fmt.Errorf("creating window: making terminal raw: %w", err)
		}
		w, err := ansii.NewWindow(os.Stdout, os.Stdin, pong.VideoMode, pong.WindowTitle)
		if err != nil {
			ansii.RestoreTerm(prev)
			return nil, nil, err
		}
		return w, func() {
			w.Close()
			ansii.RestoreTerm(prev)
		}, nil
	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("creating window: %w", err)
		}
		w, err := renderer.NewTcellWindow(screen, pong.VideoMode, pong.WindowTitle)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil
	}
}
