package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied when a key is missing or out of range.
const (
	DefaultVolume          = 0.5
	DefaultFFTSize         = 2048
	DefaultSmoothing       = 0.8
	DefaultMinDecibels     = -100.0
	DefaultMaxDecibels     = -30.0
	DefaultSpeakerBufferMS = 100
	DefaultCacheSize       = 8
	DefaultLogLevel        = "info"
)

type Config struct {
	Volume          float64 `koanf:"volume"`            // initial volume, 0..1
	SpeakerBufferMS int     `koanf:"speaker_buffer_ms"` // device buffer length
	CacheSize       int     `koanf:"cache_size"`        // decoded tracks kept in memory
	LogLevel        string  `koanf:"log_level"`         // "debug", "info", "warn" or "error"
	LogFile         string  `koanf:"log_file"`          // empty means the XDG state dir
	MPRIS           bool    `koanf:"mpris"`             // register as a media player on the session bus
	Notify          bool    `koanf:"notify"`            // desktop notification on track change

	Analyser AnalyserConfig `koanf:"analyser"`
}

// AnalyserConfig holds the spectrum analyser settings.
type AnalyserConfig struct {
	FFTSize     int     `koanf:"fft_size"`     // power of two, 32..32768
	Smoothing   float64 `koanf:"smoothing"`    // 0..1
	MinDecibels float64 `koanf:"min_decibels"` // maps to byte 0
	MaxDecibels float64 `koanf:"max_decibels"` // maps to byte 255
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom merges the given TOML files in order, later files winning.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume:          DefaultVolume,
		SpeakerBufferMS: DefaultSpeakerBufferMS,
		CacheSize:       DefaultCacheSize,
		LogLevel:        DefaultLogLevel,
		MPRIS:           true,
		Notify:          true,
		Analyser: AnalyserConfig{
			FFTSize:     DefaultFFTSize,
			Smoothing:   DefaultSmoothing,
			MinDecibels: DefaultMinDecibels,
			MaxDecibels: DefaultMaxDecibels,
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogFile != "" {
		cfg.LogFile = ExpandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/vivid/config.toml
		filepath.Join(xdg.ConfigHome, "vivid", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// ExpandPath replaces a leading "~" with the home directory.
func ExpandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// InitialVolume returns the configured volume, or the default when it is
// outside 0..1.
func (c *Config) InitialVolume() float64 {
	if c.Volume < 0 || c.Volume > 1 {
		return DefaultVolume
	}
	return c.Volume
}

// SpeakerBuffer returns the device buffer length in milliseconds.
func (c *Config) SpeakerBuffer() int {
	if c.SpeakerBufferMS <= 0 {
		return DefaultSpeakerBufferMS
	}
	return c.SpeakerBufferMS
}

// TrackCacheSize returns how many decoded tracks to keep.
func (c *Config) TrackCacheSize() int {
	if c.CacheSize <= 0 {
		return DefaultCacheSize
	}
	return c.CacheSize
}

// Level maps log_level onto a slog level. Unknown names mean info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogPath returns where the log file goes.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join("vivid", "vivid.log"))
}

// GetAnalyserConfig returns the analyser configuration with defaults applied.
func (c *Config) GetAnalyserConfig() AnalyserConfig {
	cfg := c.Analyser

	// Apply defaults
	if cfg.FFTSize < 32 || cfg.FFTSize > 32768 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		cfg.FFTSize = DefaultFFTSize
	}
	if cfg.Smoothing < 0 || cfg.Smoothing >= 1 {
		cfg.Smoothing = DefaultSmoothing
	}
	if cfg.MinDecibels >= cfg.MaxDecibels {
		cfg.MinDecibels = DefaultMinDecibels
		cfg.MaxDecibels = DefaultMaxDecibels
	}

	return cfg
}
