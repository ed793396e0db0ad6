package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/audioclip/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}

	if settings.GetFFmpegPath() != DefaultFFmpegPath {
		t.Errorf("Expected default ffmpeg path %s, got %s", DefaultFFmpegPath, settings.GetFFmpegPath())
	}

	if settings.OutputExt() != DefaultOutputExt {
		t.Errorf("Expected default extension %s, got %s", DefaultOutputExt, settings.OutputExt())
	}
}

func TestScratchDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, &Config{ScratchDir: "/env/scratch"})

	// Falls back to the environment value
	if dir := settings.GetScratchDirectory(); dir != "/env/scratch" {
		t.Errorf("Expected scratch directory from config, got %s", dir)
	}

	settings.SetScratchDirectory("/custom/scratch")
	if dir := settings.GetScratchDirectory(); dir != "/custom/scratch" {
		t.Errorf("Expected scratch directory /custom/scratch, got %s", dir)
	}
}

func TestFFmpegPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, &Config{FFmpegPath: "/usr/local/bin/ffmpeg"})

	if path := settings.GetFFmpegPath(); path != "/usr/local/bin/ffmpeg" {
		t.Errorf("Expected ffmpeg path from config, got %s", path)
	}

	settings.SetFFmpegPath("/opt/ffmpeg")
	if path := settings.GetFFmpegPath(); path != "/opt/ffmpeg" {
		t.Errorf("Expected ffmpeg path /opt/ffmpeg, got %s", path)
	}

	// Empty resets to default
	settings.SetFFmpegPath("")
	if path := settings.GetFFmpegPath(); path != "/usr/local/bin/ffmpeg" {
		t.Errorf("Expected ffmpeg path to reset, got %s", path)
	}
}

func TestLastAudioURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if url := settings.GetLastAudioURL(); url != model.DefaultAudioURL {
		t.Errorf("Expected default URL %s, got %s", model.DefaultAudioURL, url)
	}

	settings.SetLastAudioURL("https://example.com/episode.mp3")
	if url := settings.GetLastAudioURL(); url != "https://example.com/episode.mp3" {
		t.Errorf("Expected remembered URL, got %s", url)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	if _, ok := options["en"]; !ok {
		t.Error("Expected English to be an available language")
	}
}

func TestCopyPathOnShare(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.GetCopyPathOnShare() != DefaultCopyPathOnShare {
		t.Errorf("Expected default copy-path-on-share %v", DefaultCopyPathOnShare)
	}

	settings.SetCopyPathOnShare(false)
	if settings.GetCopyPathOnShare() {
		t.Error("Expected copy-path-on-share to be disabled")
	}
}
