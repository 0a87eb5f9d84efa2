// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned when a read buffer does not hold a whole
	// number of frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrPartialFrame is returned when a Source hands back a sample count
	// that is not a whole number of frames.
	ErrPartialFrame = errors.New("source returned a partial frame")

	// ErrInvalidFrameSize is returned when a mixer is configured with a
	// non-positive number of samples per frame.
	ErrInvalidFrameSize = errors.New("samples per frame must be positive")

	// ErrInvalidChannels is returned when a mixer is configured with a
	// non-positive channel count.
	ErrInvalidChannels = errors.New("channel count must be positive")

	// ErrInvalidAttenuation is returned when the attenuation factor is not in (0, 1].
	ErrInvalidAttenuation = errors.New("attenuation must be in (0, 1]")

	// ErrInvalidSampleRate is returned for a non-positive target sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrUnknownFormat is returned by Registry lookups that have no decoder.
	ErrUnknownFormat = errors.New("unknown audio format")
)
