// SPDX-License-Identifier: EPL-2.0

package lpcmmix

import (
	"fmt"

	"github.com/ik5/lpcmmix/audio"
)

var defaultMixer *audio.LPCMMixer

func init() {
	m, err := audio.NewLPCMMixer(audio.DefaultMixerConfig())
	if err != nil {
		panic(err)
	}

	defaultMixer = m
}

// MixLPCM mixes two 16-bit little-endian PCM buffers with the default mixer
// settings: frames of 4 mono samples, attenuation 0.9.
//
// The shorter buffer is padded with silence and the output holds only whole
// frames, so its length is the longer input rounded down to a multiple of
// 8 bytes. Inputs are never modified.
func MixLPCM(a, b []byte) []byte {
	return defaultMixer.Mix(a, b)
}

// MixSources reads both sources to the end as mono 16-bit PCM at targetRate
// and mixes them with the default mixer. The caller still owns and closes
// a and b.
func MixSources(a, b audio.Source, targetRate, bufferSize int) ([]int16, error) {
	return MixSourcesWith(defaultMixer, a, b, targetRate, bufferSize)
}

// MixSourcesWith is MixSources with a caller-provided mixer.
func MixSourcesWith(m *audio.LPCMMixer, a, b audio.Source, targetRate, bufferSize int) ([]int16, error) {
	sa, err := audio.ReadAllMono16(a, targetRate, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("first source: %w", err)
	}

	sb, err := audio.ReadAllMono16(b, targetRate, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("second source: %w", err)
	}

	return m.MixSamples(sa, sb), nil
}
