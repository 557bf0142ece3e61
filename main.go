package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/analysis"
	"github.com/llehouerou/vivid/internal/app"
	"github.com/llehouerou/vivid/internal/config"
	"github.com/llehouerou/vivid/internal/engine"
	"github.com/llehouerou/vivid/internal/errmsg"
	"github.com/llehouerou/vivid/internal/mpris"
	"github.com/llehouerou/vivid/internal/notify"
	"github.com/llehouerou/vivid/internal/output"
	"github.com/llehouerou/vivid/internal/stderr"
	"github.com/llehouerou/vivid/internal/track"
	"github.com/llehouerou/vivid/internal/trackcache"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println("usage: vivid FILE...")
		return
	}
	if err := run(os.Args[1:]); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(files []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closeLog()
	slog.SetDefault(logger)

	// Capture C library noise before the audio device is opened.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", "error", err)
	}
	defer stderr.Stop()

	ac := cfg.GetAnalyserConfig()
	analyser, err := analysis.New(analysis.Options{
		FFTSize:     ac.FFTSize,
		Smoothing:   ac.Smoothing,
		MinDecibels: ac.MinDecibels,
		MaxDecibels: ac.MaxDecibels,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpAnalyser, err))
	}

	buffer := time.Duration(cfg.SpeakerBuffer()) * time.Millisecond
	spk := output.NewSpeaker(output.DefaultSampleRate, buffer, analyser)
	if err := spk.Init(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpOutputOpen, err))
	}
	defer spk.Close()

	dispatcher := app.NewDispatcher()
	eng := engine.New(spk,
		engine.WithDispatcher(dispatcher),
		engine.WithLogger(logger),
		engine.WithVolume(cfg.InitialVolume()),
	)
	defer eng.Close()

	cache, err := trackcache.New(track.NewLoader(dispatcher, logger), cfg.TrackCacheSize(), logger)
	if err != nil {
		return err
	}

	deps := app.Deps{
		Engine: eng,
		Tracks: cache,
		Files:  files,
		Logger: logger,
	}
	if cfg.Notify {
		if n, err := notify.New(); err == nil {
			ann := notify.NewAnnouncer(n, logger)
			deps.Announcer = ann
			defer ann.Dismiss()
		}
	}

	var remote *mpris.Adapter
	if cfg.MPRIS {
		remote = mpris.New(logger)
		deps.Remote = remote
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if remote != nil {
		remote.Start(func(c mpris.Command) { p.Send(app.RemoteMsg(c)) })
		defer func() {
			if err := remote.Close(); err != nil {
				logger.Warn("mpris close", "error", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx, p.Send)

	logger.Info("starting", "files", len(files))
	_, err = p.Run()
	return err
}

// openLog opens the configured log file. The TUI owns the terminal, so
// nothing is logged to stderr.
func openLog(cfg *config.Config) (*slog.Logger, func(), error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()}))
	return logger, func() { _ = f.Close() }, nil
}
