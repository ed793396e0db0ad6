package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/alecthomas/kong"

	"github.com/ytget/audioclip/internal/clip"
	"github.com/ytget/audioclip/internal/config"
	"github.com/ytget/audioclip/internal/download"
	"github.com/ytget/audioclip/internal/logging"
	"github.com/ytget/audioclip/internal/platform"
	"github.com/ytget/audioclip/internal/session"
	"github.com/ytget/audioclip/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.audioclip"
	AppName = "Audio Clip"
)

// CLI defines the audioclip command structure.
type CLI struct {
	LogLevel  string `flag:"" optional:"" help:"Log level: debug, info, warn, error (overrides AUDIOCLIP_LOG_LEVEL)"`
	LogFormat string `flag:"" optional:"" help:"Log format: auto, text, json (overrides AUDIOCLIP_LOG_FORMAT)"`

	// Default GUI command (runs when no subcommand given)
	GUI GUICmd `cmd:"" default:"withargs" help:"Launch the clip form"`

	// Subcommands
	Clip    ClipCmd    `cmd:"" help:"Download an audio file and cut a clip without the GUI"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// appEnv carries what every command needs; kong binds it into Run.
type appEnv struct {
	cfg    *config.Config
	logger *slog.Logger
}

// pipeline owns the scratch directory and the controller built on it.
type pipeline struct {
	scratch    *platform.ScratchDir
	controller *session.Controller
}

type pipelineOptions struct {
	scratchDir  string
	ext         string
	ffmpegPath  string
	httpTimeout time.Duration
	audioURL    string
}

// newPipeline wires the fetcher and clipper over a locked scratch directory
func newPipeline(ctx context.Context, opts pipelineOptions, logger *slog.Logger) (*pipeline, error) {
	scratch, err := platform.OpenScratchDir(opts.scratchDir, opts.ext)
	if err != nil {
		return nil, fmt.Errorf("failed to open scratch directory: %w", err)
	}
	logger.Info("scratch directory ready", "path", scratch.Path())

	fetcher := download.NewService(scratch,
		download.WithTimeout(opts.httpTimeout),
		download.WithLogger(logger.With("component", "download")),
	)
	clipper := clip.NewService(scratch,
		clip.WithFFmpegPath(opts.ffmpegPath),
		clip.WithLogger(logger.With("component", "clip")),
	)

	controller := session.NewController(ctx, fetcher, clipper,
		session.WithLogger(logger.With("component", "session")),
		session.WithAudioURL(opts.audioURL),
	)
	return &pipeline{scratch: scratch, controller: controller}, nil
}

// Close ends the session and releases the scratch directory lock
func (p *pipeline) Close() {
	p.controller.Close()
	if err := p.scratch.Close(); err != nil {
		slog.Warn("failed to release scratch directory", "error", err)
	}
}

// GUICmd runs the fyne form.
type GUICmd struct{}

// Run executes the GUI command.
func (c *GUICmd) Run(rt *appEnv) error {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme(fyne.CurrentDevice().IsMobile()))

	settings := config.NewSettings(myApp, rt.cfg)

	p, err := newPipeline(context.Background(), pipelineOptions{
		scratchDir:  settings.GetScratchDirectory(),
		ext:         settings.OutputExt(),
		ffmpegPath:  settings.GetFFmpegPath(),
		httpTimeout: rt.cfg.HTTPTimeout,
		audioURL:    settings.GetLastAudioURL(),
	}, rt.logger)
	if err != nil {
		return err
	}
	defer p.Close()

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, p.controller, settings, rt.logger.With("component", "ui"))

	rt.logger.Info("starting GUI", "version", version)
	myWindow.ShowAndRun()
	return nil
}

// VersionCmd prints the build version.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Printf("%s %s\n", AppName, version)
	return nil
}

// applyOverrides lets command-line flags win over the environment
func (c *CLI) applyOverrides(cfg *config.Config) {
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.LogFormat = c.LogFormat
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("audioclip"),
		kong.Description("Download an audio file, cut a clip out of it, and share the clip."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	ctx.FatalIfErrorf(err)
	cli.applyOverrides(cfg)

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
	ctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	err = ctx.Run(&appEnv{cfg: cfg, logger: logger})
	ctx.FatalIfErrorf(err)
}
