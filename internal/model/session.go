package model

import "math/big"

// DefaultAudioURL pre-fills the URL field of a fresh session
const DefaultAudioURL = "https://traffic.libsyn.com/secure/cosmicskeptic/57_David_Deutsch_AUDIO_AMENDED.mp3"

// Session is the UI-facing state of one clipping session. It is owned and
// mutated by the session controller; everyone else works on snapshots.
type Session struct {
	AudioURL  string   // raw user input, not yet validated
	Download  Stage    // download pipeline
	Clip      Stage    // clip pipeline
	ClipStart *big.Int // nil when absent
	ClipEnd   *big.Int // nil when absent
}

// NewSession creates a session with the URL field pre-filled
func NewSession(audioURL string) Session {
	return Session{
		AudioURL: audioURL,
		Download: NewStage(),
		Clip:     NewStage(),
	}
}

// Clone returns a deep copy safe to hand out of the controller
func (s Session) Clone() Session {
	out := s
	out.ClipStart = cloneInt(s.ClipStart)
	out.ClipEnd = cloneInt(s.ClipEnd)
	return out
}

// IsDownloading returns true while a download attempt is in flight
func (s Session) IsDownloading() bool {
	return s.Download.Status.IsActive()
}

// IsClipping returns true while a clip attempt is in flight
func (s Session) IsClipping() bool {
	return s.Clip.Status.IsActive()
}

// DownloadEnabled reports whether a download may be started: the URL must
// parse and no download may be in flight.
func (s Session) DownloadEnabled() bool {
	if !s.Download.Status.CanStart() {
		return false
	}
	_, err := ParseAudioURL(s.AudioURL)
	return err == nil
}

// ClipEnabled reports whether a clip may be started: the download must have
// succeeded, no clip may be in flight, and both bounds must be present.
func (s Session) ClipEnabled() bool {
	if _, ok := s.DownloadedFile(); !ok {
		return false
	}
	return s.Clip.Status.CanStart() && s.ClipStart != nil && s.ClipEnd != nil
}

// ShareEnabled reports whether a clip artifact is available
func (s Session) ShareEnabled() bool {
	_, ok := s.ClippedFile()
	return ok
}

// DownloadedFile returns the downloaded artifact if the download succeeded
func (s Session) DownloadedFile() (string, bool) {
	return s.Download.File()
}

// ClippedFile returns the most recent clip artifact if the clip succeeded
func (s Session) ClippedFile() (string, bool) {
	return s.Clip.File()
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
