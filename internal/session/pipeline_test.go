package session

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/audioclip/internal/clip"
	"github.com/ytget/audioclip/internal/download"
	"github.com/ytget/audioclip/internal/model"
	"github.com/ytget/audioclip/internal/platform"
)

const episodeBody = "ID3 fake episode payload"

func TestPipeline_DownloadClipShare(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake transcoder is a POSIX shell script")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte(episodeBody))
	}))
	defer server.Close()

	// ffmpeg stand-in: copy the input ($4) to the output ($9)
	binDir := t.TempDir()
	ffmpeg := filepath.Join(binDir, "ffmpeg")
	require.NoError(t, os.WriteFile(ffmpeg, []byte("#!/bin/sh\ncp \"$4\" \"$9\"\n"), 0o755))

	scratch, err := platform.OpenScratchDir(t.TempDir(), ".mp3")
	require.NoError(t, err)
	defer scratch.Close()

	c := NewController(context.Background(),
		download.NewService(scratch),
		clip.NewService(scratch, clip.WithFFmpegPath(ffmpeg)),
	)
	defer c.Close()

	c.SetAudioURL(server.URL + "/episode.mp3")
	require.NoError(t, c.StartDownload())
	s := await(t, c, downloadFinished)
	require.Equal(t, model.StatusSucceeded, s.Download.Status, s.Download.LastError)

	downloadedPath, ok := s.DownloadedFile()
	require.True(t, ok)
	assert.Equal(t, scratch.Path(), filepath.Dir(downloadedPath))

	c.SetClipStart(big.NewInt(0))
	c.SetClipEnd(big.NewInt(30))
	require.NoError(t, c.StartClip())
	s = await(t, c, clipFinished)
	require.Equal(t, model.StatusSucceeded, s.Clip.Status, s.Clip.LastError)

	clippedPath, ok := s.ClippedFile()
	require.True(t, ok)
	assert.NotEqual(t, downloadedPath, clippedPath)

	data, err := os.ReadFile(clippedPath)
	require.NoError(t, err)
	assert.Equal(t, episodeBody, string(data))

	req, err := c.Share()
	require.NoError(t, err)
	assert.Equal(t, clippedPath, req.Path)

	// A second clip gets its own artifact and becomes the shared one
	c.SetClipStartText("5")
	require.NoError(t, c.StartClip())
	s = await(t, c, clipFinished)
	require.Equal(t, model.StatusSucceeded, s.Clip.Status, s.Clip.LastError)

	secondPath, _ := s.ClippedFile()
	assert.NotEqual(t, clippedPath, secondPath)
	assert.NotEqual(t, downloadedPath, secondPath)

	req, err = c.Share()
	require.NoError(t, err)
	assert.Equal(t, secondPath, req.Path)
}

func TestPipeline_InvalidRangeFailsClip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake transcoder is a POSIX shell script")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(episodeBody))
	}))
	defer server.Close()

	// Must never run
	binDir := t.TempDir()
	marker := filepath.Join(binDir, "ran")
	ffmpeg := filepath.Join(binDir, "ffmpeg")
	require.NoError(t, os.WriteFile(ffmpeg, []byte("#!/bin/sh\ntouch '"+marker+"'\nexit 1\n"), 0o755))

	scratch, err := platform.OpenScratchDir(t.TempDir(), ".mp3")
	require.NoError(t, err)
	defer scratch.Close()

	c := NewController(context.Background(),
		download.NewService(scratch),
		clip.NewService(scratch, clip.WithFFmpegPath(ffmpeg)),
		WithAudioURL(server.URL+"/episode.mp3"),
	)
	defer c.Close()

	require.NoError(t, c.StartDownload())
	s := await(t, c, downloadFinished)
	require.Equal(t, model.StatusSucceeded, s.Download.Status)

	c.SetClipStartText("30")
	c.SetClipEndText("10")
	require.NoError(t, c.StartClip())
	s = await(t, c, clipFinished)

	assert.Equal(t, model.StatusFailed, s.Clip.Status)
	assert.Contains(t, s.Clip.LastError, clip.ErrInvalidRange.Error())
	assert.NoFileExists(t, marker)
}

func TestPipeline_HTTPErrorFailsDownload(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	scratch, err := platform.OpenScratchDir(t.TempDir(), ".mp3")
	require.NoError(t, err)
	defer scratch.Close()

	c := NewController(context.Background(),
		download.NewService(scratch),
		clip.NewService(scratch),
		WithAudioURL(server.URL+"/missing.mp3"),
	)
	defer c.Close()

	require.NoError(t, c.StartDownload())
	s := await(t, c, downloadFinished)

	assert.Equal(t, model.StatusFailed, s.Download.Status)
	assert.Contains(t, s.Download.LastError, "404")
	assert.True(t, s.DownloadEnabled())

	entries, err := os.ReadDir(scratch.Path())
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, platform.LockFileName, e.Name(), "no artifact may be left behind")
	}
}
