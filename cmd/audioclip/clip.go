package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/audioclip/internal/model"
	"github.com/ytget/audioclip/internal/platform"
	"github.com/ytget/audioclip/internal/session"
)

// ClipCmd runs the download and clip stages headless and prints a summary.
type ClipCmd struct {
	URL        string        `flag:"" optional:"" help:"Audio file URL (default: AUDIOCLIP_DEFAULT_URL)"`
	Start      string        `flag:"" required:"" help:"Clip start offset in seconds"`
	End        string        `flag:"" required:"" help:"Clip end offset in seconds"`
	Share      bool          `flag:"" help:"Hand the clip to the platform share action when done"`
	ScratchDir string        `flag:"" optional:"" help:"Scratch directory (overrides AUDIOCLIP_SCRATCH_DIR)"`
	FFmpeg     string        `flag:"" name:"ffmpeg" optional:"" help:"ffmpeg executable (overrides AUDIOCLIP_FFMPEG_PATH)"`
	Timeout    time.Duration `flag:"" default:"0s" help:"Overall deadline, 0 for none"`
}

// Run executes the clip command.
func (c *ClipCmd) Run(rt *appEnv) error {
	start := model.ParseOffset(c.Start)
	if start == nil {
		return fmt.Errorf("invalid --start %q: expected a non-negative whole number", c.Start)
	}
	end := model.ParseOffset(c.End)
	if end == nil {
		return fmt.Errorf("invalid --end %q: expected a non-negative whole number", c.End)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	opts := pipelineOptions{
		scratchDir:  firstNonEmpty(c.ScratchDir, rt.cfg.ScratchDir),
		ext:         rt.cfg.OutputExt,
		ffmpegPath:  firstNonEmpty(c.FFmpeg, rt.cfg.FFmpegPath),
		httpTimeout: rt.cfg.HTTPTimeout,
		audioURL:    firstNonEmpty(c.URL, rt.cfg.DefaultURL),
	}
	p, err := newPipeline(ctx, opts, rt.logger)
	if err != nil {
		return err
	}
	defer p.Close()

	state, err := runHeadless(ctx, p.controller, start, end)
	fmt.Fprintln(os.Stdout, renderSummary(state))
	if err != nil {
		return err
	}

	req, err := p.controller.Share()
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, req.Path)

	if c.Share {
		if err := platform.ShareFile(req); err != nil {
			return fmt.Errorf("failed to share clip: %w", err)
		}
	}
	return nil
}

// runHeadless drives the controller through download then clip
func runHeadless(ctx context.Context, controller *session.Controller, start, end *big.Int) (model.Session, error) {
	controller.SetClipStart(start)
	controller.SetClipEnd(end)

	if err := controller.StartDownload(); err != nil {
		return controller.State(), fmt.Errorf("failed to start download: %w", err)
	}
	state, err := controller.Await(ctx, func(s model.Session) bool { return s.Download.Status.IsFinished() })
	if err != nil {
		return state, fmt.Errorf("waiting for download: %w", err)
	}
	if state.Download.Status != model.StatusSucceeded {
		return state, fmt.Errorf("download failed: %s", state.Download.LastError)
	}

	if err := controller.StartClip(); err != nil {
		return state, fmt.Errorf("failed to start clip: %w", err)
	}
	state, err = controller.Await(ctx, func(s model.Session) bool { return s.Clip.Status.IsFinished() })
	if err != nil {
		return state, fmt.Errorf("waiting for clip: %w", err)
	}
	if state.Clip.Status != model.StatusSucceeded {
		return state, fmt.Errorf("clip failed: %s", state.Clip.LastError)
	}
	return state, nil
}

// renderSummary renders one row per stage
func renderSummary(s model.Session) string {
	headers := []string{"Stage", "Status", "File", "Size", "Elapsed", "Error"}
	rows := [][]string{
		stageRow("download", s.Download),
		stageRow("clip", s.Clip),
	}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
	return renderTable(headers, rows, aligns)
}

func stageRow(name string, stage model.Stage) []string {
	size := ""
	if path, ok := stage.File(); ok {
		size = humanize.Bytes(uint64(platform.FileSize(path)))
	}
	elapsed := ""
	if d := stage.Elapsed(); d > 0 {
		elapsed = d.Round(time.Millisecond).String()
	}
	return []string{name, stage.Status.String(), stage.Artifact, size, elapsed, stage.LastError}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
