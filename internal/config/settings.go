package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyScratchDir      = "scratch_directory"
	KeyFFmpegPath      = "ffmpeg_path"
	KeyLastAudioURL    = "last_audio_url"
	KeyLanguage        = "app_language"
	KeyCopyPathOnShare = "copy_path_on_share"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultCopyPathOnShare = true
)

// Settings manages GUI configuration persisted in Fyne preferences. Values
// missing from the preferences fall back to the environment Config.
type Settings struct {
	app      fyne.App
	defaults Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults *Config) *Settings {
	s := &Settings{app: app}
	if defaults != nil {
		s.defaults = *defaults
	}
	s.defaults.applyDefaults()
	return s
}

// GetScratchDirectory returns the configured scratch directory, empty for the platform default
func (s *Settings) GetScratchDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyScratchDir, s.defaults.ScratchDir)
}

// SetScratchDirectory sets the scratch directory
func (s *Settings) SetScratchDirectory(dir string) {
	s.app.Preferences().SetString(KeyScratchDir, dir)
}

// GetFFmpegPath returns the transcoder executable
func (s *Settings) GetFFmpegPath() string {
	path := s.app.Preferences().String(KeyFFmpegPath)
	if path == "" {
		return s.defaults.FFmpegPath
	}
	return path
}

// SetFFmpegPath sets the transcoder executable; empty resets to the default
func (s *Settings) SetFFmpegPath(path string) {
	if path == "" {
		s.app.Preferences().RemoveValue(KeyFFmpegPath)
		return
	}
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetLastAudioURL returns the URL entered in the previous run, or the default URL
func (s *Settings) GetLastAudioURL() string {
	url := s.app.Preferences().String(KeyLastAudioURL)
	if url == "" {
		return s.defaults.DefaultURL
	}
	return url
}

// SetLastAudioURL remembers the URL the user last downloaded
func (s *Settings) SetLastAudioURL(url string) {
	s.app.Preferences().SetString(KeyLastAudioURL, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCopyPathOnShare returns whether sharing also copies the clip path to the clipboard
func (s *Settings) GetCopyPathOnShare() bool {
	return s.app.Preferences().BoolWithFallback(KeyCopyPathOnShare, DefaultCopyPathOnShare)
}

// SetCopyPathOnShare sets whether sharing also copies the clip path
func (s *Settings) SetCopyPathOnShare(copyPath bool) {
	s.app.Preferences().SetBool(KeyCopyPathOnShare, copyPath)
}

// OutputExt returns the artifact extension, not user-editable
func (s *Settings) OutputExt() string {
	return s.defaults.OutputExt
}

// Defaults returns the environment config the settings fall back to
func (s *Settings) Defaults() Config {
	return s.defaults
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
