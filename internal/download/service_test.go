package download

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/audioclip/internal/platform"
)

func newScratch(t *testing.T) *platform.ScratchDir {
	t.Helper()
	dir, err := platform.OpenScratchDir(t.TempDir(), ".mp3")
	require.NoError(t, err)
	t.Cleanup(func() { dir.Close() })
	return dir
}

// artifacts lists every file in the scratch dir except the lock
func artifacts(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		if entry.Name() == platform.LockFileName {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}

func TestFetch_Success(t *testing.T) {
	payload := bytes.Repeat([]byte("ID3audio"), 64*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	scratch := newScratch(t)
	service := NewService(scratch)

	path, err := service.Fetch(context.Background(), server.URL+"/episode.mp3")
	require.NoError(t, err)

	assert.Equal(t, scratch.Path(), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".mp3"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Only the final artifact remains, no partial file
	assert.Equal(t, []string{filepath.Base(path)}, artifacts(t, scratch.Path()))
}

func TestFetch_FreshNamePerAttempt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("audio"))
	}))
	defer server.Close()

	service := NewService(newScratch(t))

	first, err := service.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := service.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	scratch := newScratch(t)
	service := NewService(scratch)

	_, err := service.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "status 404")
	assert.Empty(t, artifacts(t, scratch.Path()))
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	service := NewService(newScratch(t))

	_, err := service.Fetch(context.Background(), url)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Equal(t, url, fetchErr.URL)
}

func TestFetch_InvalidURL(t *testing.T) {
	service := NewService(newScratch(t))

	_, err := service.Fetch(context.Background(), "://missing-scheme")
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetch_CancelMidStream(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "10485760")
		_, _ = w.Write(bytes.Repeat([]byte("x"), 1024))
		w.(http.Flusher).Flush()
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	scratch := newScratch(t)
	service := NewService(scratch)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		_, err := service.Fetch(ctx, server.URL)
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		var fetchErr *FetchError
		assert.ErrorAs(t, err, &fetchErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Fetch did not return after cancellation")
	}

	// The partial file is cleaned up and nothing is exposed
	assert.Empty(t, artifacts(t, scratch.Path()))
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	service := NewService(newScratch(t), WithTimeout(50*time.Millisecond))

	_, err := service.Fetch(context.Background(), server.URL)
	require.Error(t, err)
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &FetchError{URL: "https://example.com/a.mp3", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch https://example.com/a.mp3: connection reset", err.Error())
}

func TestWithHTTPClient(t *testing.T) {
	client := &http.Client{Timeout: time.Second}
	service := NewService(newScratch(t), WithHTTPClient(client))
	assert.Same(t, client, service.client)

	// nil keeps the default
	service = NewService(newScratch(t), WithHTTPClient(nil))
	assert.NotNil(t, service.client)
}
