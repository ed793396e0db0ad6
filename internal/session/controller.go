// Package session owns the state of one clipping session and sequences the
// download and clip stages. It is the single writer of model.Session; every
// other component talks to it through the entry points below and observes
// snapshots.
package session

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ytget/audioclip/internal/clip"
	"github.com/ytget/audioclip/internal/download"
	"github.com/ytget/audioclip/internal/logging"
	"github.com/ytget/audioclip/internal/model"
	"github.com/ytget/audioclip/internal/platform"
)

var (
	ErrDownloadDisabled = errors.New("download is not available")
	ErrClipDisabled     = errors.New("clip is not available")
	ErrNothingToShare   = errors.New("no clip to share")
	ErrClosed           = errors.New("session closed")
)

// Controller holds the session state and runs pipeline attempts.
type Controller struct {
	fetcher download.Fetcher
	clipper clip.Clipper
	logger  *slog.Logger
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	state           model.Session
	downloadAttempt uint64
	clipAttempt     uint64
	closed          bool
	changed         chan struct{}
	onUpdate        func(model.Session)
	seq             uint64

	// notifyMu serializes callbacks; delivered is the newest seq handed out
	notifyMu  sync.Mutex
	delivered uint64
	downloads sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAudioURL pre-fills the URL field of the new session
func WithAudioURL(url string) Option {
	return func(c *Controller) {
		c.state.AudioURL = url
	}
}

// WithClock overrides the time source used for stage timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController creates a session controller. The session context is derived
// from ctx; cancelling ctx has the same effect on in-flight downloads as Close.
func NewController(ctx context.Context, fetcher download.Fetcher, clipper clip.Clipper, opts ...Option) *Controller {
	sessionCtx, cancel := context.WithCancel(ctx)
	c := &Controller{
		fetcher: fetcher,
		clipper: clipper,
		logger:  logging.Discard(),
		now:     time.Now,
		ctx:     sessionCtx,
		cancel:  cancel,
		state:   model.NewSession(model.DefaultAudioURL),
		changed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUpdateCallback sets the callback invoked with a snapshot after every
// state change. Callbacks run outside the state lock, one at a time; a
// snapshot older than one already delivered is dropped. The callback may call
// State but must not call mutating methods synchronously.
func (c *Controller) SetUpdateCallback(callback func(model.Session)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// State returns a snapshot of the session
func (c *Controller) State() model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SetAudioURL stores the raw URL text
func (c *Controller) SetAudioURL(text string) {
	c.update(func(s *model.Session) { s.AudioURL = text })
}

// SetClipStart sets the start bound; nil clears it
func (c *Controller) SetClipStart(start *big.Int) {
	start = cloneInt(start)
	c.update(func(s *model.Session) { s.ClipStart = start })
}

// SetClipEnd sets the end bound; nil clears it
func (c *Controller) SetClipEnd(end *big.Int) {
	end = cloneInt(end)
	c.update(func(s *model.Session) { s.ClipEnd = end })
}

// SetClipStartText parses user text; unparseable text clears the bound
func (c *Controller) SetClipStartText(text string) {
	c.SetClipStart(model.ParseOffset(text))
}

// SetClipEndText parses user text; unparseable text clears the bound
func (c *Controller) SetClipEndText(text string) {
	c.SetClipEnd(model.ParseOffset(text))
}

// StartDownload starts a download attempt for the current URL. The stage is
// InProgress when this returns; the result arrives asynchronously.
func (c *Controller) StartDownload() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.state.DownloadEnabled() {
		c.mu.Unlock()
		return ErrDownloadDisabled
	}

	parsed, err := model.ParseAudioURL(c.state.AudioURL)
	if err != nil {
		c.mu.Unlock()
		return ErrDownloadDisabled
	}
	rawURL := parsed.String()

	c.downloadAttempt++
	attempt := c.downloadAttempt
	c.state.Download = c.state.Download.Start(c.now())
	c.downloads.Add(1)
	c.publishLocked()

	c.logger.Info("download requested", "attempt", attempt, "url", rawURL)
	go c.runDownload(attempt, rawURL)
	return nil
}

// StartClip starts a clip attempt over the downloaded file with the current
// bounds. The stage is InProgress when this returns.
func (c *Controller) StartClip() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.state.ClipEnabled() {
		c.mu.Unlock()
		return ErrClipDisabled
	}

	input, _ := c.state.DownloadedFile()
	start := cloneInt(c.state.ClipStart)
	end := cloneInt(c.state.ClipEnd)

	c.clipAttempt++
	attempt := c.clipAttempt
	c.state.Clip = c.state.Clip.Start(c.now())
	c.publishLocked()

	c.logger.Info("clip requested", "attempt", attempt, "input", input, "start", start.String(), "end", end.String())
	go c.runClip(attempt, input, start, end)
	return nil
}

// Share returns the share request for the most recent clip
func (c *Controller) Share() (platform.ShareRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, ok := c.state.ClippedFile()
	if !ok {
		return platform.ShareRequest{}, ErrNothingToShare
	}
	return platform.ShareRequest{
		Path:     path,
		MIMEType: platform.ShareMIMEType,
		Title:    platform.ShareTitle,
	}, nil
}

// Await blocks until cond holds for the session state, ctx ends, or the
// session is closed. It returns the snapshot that satisfied cond.
func (c *Controller) Await(ctx context.Context, cond func(model.Session) bool) (model.Session, error) {
	for {
		c.mu.Lock()
		snapshot := c.state.Clone()
		changed := c.changed
		closed := c.closed
		c.mu.Unlock()

		if cond(snapshot) {
			return snapshot, nil
		}
		if closed {
			return snapshot, ErrClosed
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return snapshot, ctx.Err()
		}
	}
}

// Close ends the session. In-flight downloads are cancelled and their
// results discarded; a running transcoder is left to finish but its result
// is discarded too. No callback fires after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.changed)
	c.mu.Unlock()

	c.cancel()
	c.downloads.Wait()

	// Wait out a callback that was already being delivered
	c.notifyMu.Lock()
	c.notifyMu.Unlock() //nolint:staticcheck // barrier

	c.logger.Info("session closed")
}

func (c *Controller) runDownload(attempt uint64, rawURL string) {
	defer c.downloads.Done()

	path, err := c.fetcher.Fetch(c.ctx, rawURL)

	c.mu.Lock()
	if c.closed || attempt != c.downloadAttempt {
		c.mu.Unlock()
		c.logger.Debug("discarding download result", "attempt", attempt, "error", err)
		return
	}
	if err != nil {
		c.state.Download = c.state.Download.Fail(err, c.now())
		c.logger.Error("download failed", "attempt", attempt, "error", err)
	} else {
		c.state.Download = c.state.Download.Succeed(path, c.now())
		c.logger.Info("download succeeded", "attempt", attempt, "path", path)
	}
	c.publishLocked()
}

func (c *Controller) runClip(attempt uint64, input string, start, end *big.Int) {
	// The transcoder is not tied to session teardown
	ctx := context.WithoutCancel(c.ctx)

	path, err := c.clipper.Clip(ctx, input, start, end)

	c.mu.Lock()
	if c.closed || attempt != c.clipAttempt {
		c.mu.Unlock()
		c.logger.Debug("discarding clip result", "attempt", attempt, "error", err)
		return
	}
	if err != nil {
		c.state.Clip = c.state.Clip.Fail(err, c.now())
		c.logger.Error("clip failed", "attempt", attempt, "error", err)
	} else {
		c.state.Clip = c.state.Clip.Succeed(path, c.now())
		c.logger.Info("clip succeeded", "attempt", attempt, "path", path)
	}
	c.publishLocked()
}

// update applies mutate to the state and publishes the result. Ignored once closed.
func (c *Controller) update(mutate func(*model.Session)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	mutate(&c.state)
	c.publishLocked()
}

// publishLocked wakes waiters and delivers the callback. Must be called with
// mu held; it releases mu.
func (c *Controller) publishLocked() {
	c.seq++
	seq := c.seq
	snapshot := c.state.Clone()
	callback := c.onUpdate

	close(c.changed)
	c.changed = make(chan struct{})
	c.mu.Unlock()

	if callback == nil {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed || seq <= c.delivered {
		return
	}
	c.delivered = seq
	callback(snapshot)
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
