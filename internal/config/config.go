package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ytget/audioclip/internal/model"
)

// EnvPrefix is prepended to every environment variable, e.g. AUDIOCLIP_FFMPEG_PATH
const EnvPrefix = "AUDIOCLIP"

// Config holds process configuration resolved from the environment.
type Config struct {
	// Pipeline settings
	ScratchDir  string        `envconfig:"SCRATCH_DIR"`
	FFmpegPath  string        `envconfig:"FFMPEG_PATH" default:"ffmpeg"`
	DefaultURL  string        `envconfig:"DEFAULT_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	OutputExt   string        `envconfig:"OUTPUT_EXT" default:".mp3"`

	// Logging settings
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"auto"`
}

// Load loads configuration from an optional .env file and environment variables.
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.FFmpegPath = strings.TrimSpace(c.FFmpegPath)
	if c.FFmpegPath == "" {
		c.FFmpegPath = DefaultFFmpegPath
	}
	if strings.TrimSpace(c.DefaultURL) == "" {
		c.DefaultURL = model.DefaultAudioURL
	}
	if c.OutputExt == "" {
		c.OutputExt = DefaultOutputExt
	}
	if !strings.HasPrefix(c.OutputExt, ".") {
		c.OutputExt = "." + c.OutputExt
	}
}

// Validate rejects configuration values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP timeout must not be negative: %s", c.HTTPTimeout)
	}
	if strings.ContainsAny(c.OutputExt, `/\`) {
		return fmt.Errorf("output extension must not contain path separators: %q", c.OutputExt)
	}
	return nil
}

// Default values
const (
	DefaultFFmpegPath = "ffmpeg"
	DefaultOutputExt  = ".mp3"
)
