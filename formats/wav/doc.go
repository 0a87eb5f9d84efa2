// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM RIFF/WAVE files.
//
// Decoder parses the container with github.com/go-audio/wav, so chunks such
// as LIST, fact or JUNK may appear anywhere before "data". Only the PCM
// format tag at 16 bits per sample is accepted; anything else yields
// ErrOnlyPCM16bitSupported.
//
//	f, _ := os.Open("take1.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Samples come back as float32 in [-1, 1), scaled by 1/32768 so that an
// int16 read from disk converts back to the same value.
//
// WriteWAV16 and WritePCM16 write a canonical 44 byte header followed by
// the little-endian sample data. The mixer output is written this way:
//
//	mixed := mixer.MixSamples(a, b)
//	err := wav.WriteWAV16(out, 8000, mixed)
package wav
