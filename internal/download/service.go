package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/audioclip/internal/logging"
	"github.com/ytget/audioclip/internal/platform"
)

// HTTP constants
const (
	UserAgent        = "audioclip/1.0"
	FilePermissions  = 0644
	AcceptAudioTypes = "audio/*, */*;q=0.8"
)

// Service handles download operations
type Service struct {
	client *http.Client
	namer  ArtifactNamer
	logger *slog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout bounds the whole request including the body transfer. Zero
// means the request is bounded only by its context.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			client := *s.client
			client.Timeout = timeout
			s.client = &client
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

// NewService creates a new download service writing artifacts named by namer
func NewService(namer ArtifactNamer, opts ...Option) *Service {
	s := &Service{
		client: &http.Client{},
		namer:  namer,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch issues a single GET for rawURL and streams the body into a new
// artifact. Cancelling ctx aborts the transfer. No retry is attempted.
func (s *Service) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", AcceptAudioTypes)

	started := time.Now()
	s.logger.Info("download started", "url", rawURL)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return "", &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status),
		}
	}

	outputPath := s.namer.NewArtifactPath()
	written, err := writeArtifact(outputPath, resp.Body)
	if err != nil {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	s.logger.Info("download finished",
		"url", rawURL,
		"path", outputPath,
		"size", humanize.Bytes(uint64(written)),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	return outputPath, nil
}

// writeArtifact copies body into a partial file and renames it into place
// once the stream is complete. The partial file is removed on failure.
func writeArtifact(outputPath string, body io.Reader) (int64, error) {
	partialPath := platform.PartialPath(outputPath)

	file, err := os.OpenFile(partialPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, FilePermissions)
	if err != nil {
		return 0, fmt.Errorf("create artifact: %w", err)
	}

	written, err := io.Copy(file, body)
	if err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = platform.RemoveQuietly(partialPath)
		return written, fmt.Errorf("write artifact: %w", err)
	}

	if err := os.Rename(partialPath, outputPath); err != nil {
		_ = platform.RemoveQuietly(partialPath)
		return written, fmt.Errorf("finalize artifact: %w", err)
	}
	return written, nil
}
