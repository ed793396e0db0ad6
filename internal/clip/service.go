package clip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/audioclip/internal/logging"
	"github.com/ytget/audioclip/internal/platform"
)

// FFmpeg constants for clipping
const (
	FFmpegCommand = "ffmpeg"

	SeekFlag     = "-ss"
	InputFlag    = "-i"
	DurationFlag = "-t"
	CodecFlag    = "-c"
	StreamCopy   = "copy"

	// MaxDiagnosticBytes bounds the transcoder output kept for ClipError
	MaxDiagnosticBytes = 8 * 1024
)

// Service handles clip operations
type Service struct {
	ffmpegPath string
	namer      ArtifactNamer
	logger     *slog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithFFmpegPath sets the transcoder executable
func WithFFmpegPath(path string) Option {
	return func(s *Service) {
		if strings.TrimSpace(path) != "" {
			s.ffmpegPath = path
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new clip service writing artifacts named by namer
func NewService(namer ArtifactNamer, opts ...Option) *Service {
	s := &Service{
		ffmpegPath: FFmpegCommand,
		namer:      namer,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Duration returns end - start
func Duration(start, end *big.Int) *big.Int {
	return new(big.Int).Sub(end, start)
}

// ValidateRange checks both bounds are present, non-negative, and end > start
func ValidateRange(start, end *big.Int) error {
	if start == nil || end == nil {
		return fmt.Errorf("%w: both start and end are required", ErrInvalidRange)
	}
	if start.Sign() < 0 || end.Sign() < 0 {
		return fmt.Errorf("%w: bounds must not be negative", ErrInvalidRange)
	}
	if end.Cmp(start) <= 0 {
		return fmt.Errorf("%w: end %s must be greater than start %s", ErrInvalidRange, end, start)
	}
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs(inputPath string, start, duration *big.Int, outputPath string) []string {
	return []string{
		SeekFlag, start.String(),
		InputFlag, inputPath,
		DurationFlag, duration.String(),
		CodecFlag, StreamCopy,
		outputPath,
	}
}

// Clip runs ffmpeg to copy [start, end) of inputPath into a new artifact.
// The process is bound to ctx; no retry is attempted.
func (s *Service) Clip(ctx context.Context, inputPath string, start, end *big.Int) (string, error) {
	if err := ValidateRange(start, end); err != nil {
		return "", &ClipError{Input: inputPath, ExitCode: -1, Err: err}
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return "", &ClipError{Input: inputPath, ExitCode: -1, Err: fmt.Errorf("input file: %w", err)}
	}
	if !info.Mode().IsRegular() {
		return "", &ClipError{Input: inputPath, ExitCode: -1, Err: fmt.Errorf("input is not a regular file")}
	}

	duration := Duration(start, end)
	outputPath := s.namer.NewArtifactPath()
	args := s.BuildFFmpegArgs(inputPath, start, duration, outputPath)

	started := time.Now()
	s.logger.Info("clip started", "input", inputPath, "start", start.String(), "duration", duration.String())

	diag := newTailBuffer(MaxDiagnosticBytes)
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)
	cmd.Stdout = diag
	cmd.Stderr = diag

	if err := cmd.Run(); err != nil {
		// Remove partial output file
		_ = platform.RemoveQuietly(outputPath)

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		s.logger.Warn("clip failed", "input", inputPath, "exit_code", exitCode, "error", err)
		return "", &ClipError{
			Input:    inputPath,
			ExitCode: exitCode,
			Output:   strings.TrimSpace(diag.String()),
			Err:      fmt.Errorf("ffmpeg: %w", err),
		}
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", &ClipError{
			Input:    inputPath,
			ExitCode: 0,
			Output:   strings.TrimSpace(diag.String()),
			Err:      fmt.Errorf("ffmpeg produced no output: %w", err),
		}
	}

	s.logger.Info("clip finished",
		"input", inputPath,
		"path", outputPath,
		"size", humanize.Bytes(uint64(platform.FileSize(outputPath))),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	return outputPath, nil
}
