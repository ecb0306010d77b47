package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/typefx/internal/reveal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate = 60
	DefaultTheme     = "cyberpunk"
	DefaultCaret     = "█"
	DefaultBlinkMs   = 250
	DefaultWidth     = 72
	DefaultVolume    = 1.0
	DefaultLogLevel  = "warn"

	MaxCharsPerSecond = 1e6
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
	Texts   []string      `yaml:"texts"`
}

type TimingConfig struct {
	CharsPerSecond float64 `yaml:"chars_per_second"`
	MaxDurationMs  float64 `yaml:"max_duration_ms"`
	FrameRate      int     `yaml:"frame_rate"`
}

type DisplayConfig struct {
	Theme   string `yaml:"theme"`
	Caret   string `yaml:"caret"`
	BlinkMs int    `yaml:"blink_ms"`
	Width   int    `yaml:"width"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	File    string  `yaml:"file"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

var defaultTexts = []string{
	"Welcome back. All systems are nominal.",
	"Incoming transmission decoded: the relay on the northern ridge is online again.",
	"Press enter to replay, n for the next line, q to quit.",
}

func DefaultConfig() *Config {
	return &Config{
		Timing: TimingConfig{
			CharsPerSecond: reveal.DefaultCharsPerSecond,
			MaxDurationMs:  reveal.DefaultMaxDuration,
			FrameRate:      DefaultFrameRate,
		},
		Display: DisplayConfig{
			Theme:   DefaultTheme,
			Caret:   DefaultCaret,
			BlinkMs: DefaultBlinkMs,
			Width:   DefaultWidth,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultVolume,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Texts: append([]string(nil), defaultTexts...),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !c.RevealTiming().Valid() {
		return fmt.Errorf("%w: timing needs positive chars_per_second and max_duration_ms", ErrInvalidConfig)
	}
	if c.Timing.CharsPerSecond > MaxCharsPerSecond {
		return fmt.Errorf("%w: chars_per_second %g above %g", ErrInvalidConfig, c.Timing.CharsPerSecond, MaxCharsPerSecond)
	}
	if c.Timing.FrameRate <= 0 || c.Timing.FrameRate > 1000 {
		return fmt.Errorf("%w: frame_rate %d out of range (1-1000)", ErrInvalidConfig, c.Timing.FrameRate)
	}
	if c.Display.BlinkMs < 0 {
		return fmt.Errorf("%w: blink_ms must not be negative", ErrInvalidConfig)
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("%w: width must not be negative", ErrInvalidConfig)
	}
	if c.Audio.Volume < 0 {
		return fmt.Errorf("%w: volume must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) RevealTiming() reveal.Timing {
	return reveal.Timing{
		CharsPerSecond: c.Timing.CharsPerSecond,
		MaxDuration:    c.Timing.MaxDurationMs,
	}
}

// ApplyPreset overwrites the timing section with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	c.Timing.CharsPerSecond = p.CharsPerSecond
	c.Timing.MaxDurationMs = p.MaxDurationMs
	if p.FrameRate > 0 {
		c.Timing.FrameRate = p.FrameRate
	}
	return nil
}
