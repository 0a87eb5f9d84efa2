// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/lpcmmix/utils"
)

// MixerConfig describes how an LPCMMixer groups and scales samples.
type MixerConfig struct {
	// SamplesPerFrame is the number of samples per channel in a frame.
	SamplesPerFrame int
	// Channels is the number of interleaved channels in a frame.
	Channels int
	// Attenuation scales the summed signal before clipping, in (0, 1].
	Attenuation float32
}

// DefaultMixerConfig returns 4 samples per frame, mono, 0.9 attenuation.
func DefaultMixerConfig() MixerConfig {
	return MixerConfig{
		SamplesPerFrame: DefaultSamplesPerFrame,
		Channels:        1,
		Attenuation:     DefaultAttenuation,
	}
}

// FrameWidth is the number of samples in one frame.
func (c MixerConfig) FrameWidth() int {
	return c.SamplesPerFrame * c.Channels
}

// Validate reports the first setting a mixer cannot run with.
func (c MixerConfig) Validate() error {
	if c.SamplesPerFrame <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameSize, c.SamplesPerFrame)
	}

	if c.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, c.Channels)
	}

	if !(c.Attenuation > 0 && c.Attenuation <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidAttenuation, c.Attenuation)
	}

	return nil
}

// LPCMMixer mixes pairs of 16-bit little-endian PCM buffers.
//
// A mixer holds no state besides its configuration, so a single instance can
// be shared between goroutines.
type LPCMMixer struct {
	cfg MixerConfig
	mix SampleMixFunc
}

// NewLPCMMixer returns a mixer for cfg, or the Validate error.
func NewLPCMMixer(cfg MixerConfig) (*LPCMMixer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &LPCMMixer{
		cfg: cfg,
		mix: Attenuated(cfg.Attenuation),
	}, nil
}

// Config returns the settings the mixer was built with.
func (m *LPCMMixer) Config() MixerConfig { return m.cfg }

// Mix decodes a and b as PCM16LE, pads the shorter with silence, mixes every
// complete frame and returns the mixed samples as a new PCM16LE buffer.
//
// The output holds numFrames*FrameWidth samples, where numFrames is the
// padded sample count divided by the frame width. Odd trailing bytes and
// samples after the last complete frame are dropped. Mix never fails.
func (m *LPCMMixer) Mix(a, b []byte) []byte {
	return utils.Int16ToBytesLE(m.MixSamples(utils.BytesToInt16LE(a), utils.BytesToInt16LE(b)))
}

// MixSamples is Mix for already decoded samples. Neither input is modified.
func (m *LPCMMixer) MixSamples(a, b []int16) []int16 {
	a, b = PadWithSilence(a, b)

	mixed := make([]int16, len(a))
	n := MixFrames(mixed, a, b, m.cfg.SamplesPerFrame, m.cfg.Channels, m.mix)

	return mixed[:n]
}
