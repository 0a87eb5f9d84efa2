// SPDX-License-Identifier: EPL-2.0

// Package config loads lpcmmix settings from a JSON file, the environment
// and built-in defaults, in increasing order of precedence below flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/lpcmmix/audio"
	"github.com/ik5/lpcmmix/internal/logging"
)

const (
	EnvRate        = "LPCMMIX_RATE"
	EnvAttenuation = "LPCMMIX_ATTENUATION"

	FormatWAV = "wav"
	FormatRaw = "raw"
)

type Config struct {
	Logging logging.Config `json:"logging"`
	Mixer   MixerConfig    `json:"mixer"`
	Input   InputConfig    `json:"input"`
	Output  OutputConfig   `json:"output"`
}

type MixerConfig struct {
	SamplesPerFrame int     `json:"samples_per_frame"`
	Channels        int     `json:"channels"`
	Attenuation     float32 `json:"attenuation"`
}

type InputConfig struct {
	// SampleRate is the common rate decoded inputs are resampled to. It is
	// also the rate written into WAV output.
	SampleRate int `json:"sample_rate"`
	// Raw skips container decoding; inputs are PCM16LE already.
	Raw        bool `json:"raw"`
	BufferSize int  `json:"buffer_size"`
}

type OutputConfig struct {
	// Format is "wav", "raw" or empty to pick by output file extension.
	Format string `json:"format"`
}

func Default() *Config {
	mc := audio.DefaultMixerConfig()

	return &Config{
		Mixer: MixerConfig{
			SamplesPerFrame: mc.SamplesPerFrame,
			Channels:        mc.Channels,
			Attenuation:     mc.Attenuation,
		},
		Input: InputConfig{
			SampleRate: 8000,
			BufferSize: 4096,
		},
	}
}

// Load reads path over the defaults and applies the environment. An empty
// path or a missing file yields the defaults. The result is not validated;
// callers layer their own overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) ApplyEnv() error {
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		c.Logging.Level = level
	}
	if format := strings.TrimSpace(os.Getenv("LOG_FORMAT")); format != "" {
		c.Logging.Format = format
	}

	if rate := strings.TrimSpace(os.Getenv(EnvRate)); rate != "" {
		v, err := strconv.Atoi(rate)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRate, err)
		}
		c.Input.SampleRate = v
	}

	if att := strings.TrimSpace(os.Getenv(EnvAttenuation)); att != "" {
		v, err := strconv.ParseFloat(att, 32)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAttenuation, err)
		}
		c.Mixer.Attenuation = float32(v)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Input.SampleRate <= 0 {
		return fmt.Errorf("input.sample_rate: %w: %d", audio.ErrInvalidSampleRate, c.Input.SampleRate)
	}
	if c.Input.BufferSize < 0 {
		return errors.New("input.buffer_size must be non-negative")
	}

	if err := c.MixerConfig().Validate(); err != nil {
		return fmt.Errorf("mixer: %w", err)
	}

	switch strings.ToLower(c.Output.Format) {
	case "", FormatWAV, FormatRaw:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	return nil
}

func (c *Config) MixerConfig() audio.MixerConfig {
	return audio.MixerConfig{
		SamplesPerFrame: c.Mixer.SamplesPerFrame,
		Channels:        c.Mixer.Channels,
		Attenuation:     c.Mixer.Attenuation,
	}
}
