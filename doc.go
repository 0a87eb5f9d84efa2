// SPDX-License-Identifier: EPL-2.0

// Package lpcmmix mixes two 16-bit signed little-endian linear PCM buffers
// into one.
//
// Each pair of samples is normalized to [-1, 1), summed, attenuated by 0.9,
// clipped to [-1, 1] and scaled back to int16, truncating toward zero:
//
//	mixed := lpcmmix.MixLPCM(legA, legB)
//
// Inputs of different length are reconciled by padding the shorter one with
// silence. Mixing walks fixed-width frames (4 samples of 1 channel by
// default) and drops a trailing partial frame, so the output may be a few
// samples shorter than the longer input.
//
// # Decoded sources
//
// Encoded audio goes through the audio and formats packages first. MixSources
// downmixes and resamples both sides to a common rate before mixing:
//
//	reg := formats.NewRegistry()
//	dec, _ := reg.ForPath("leg-a.mp3")
//	a, _ := dec.Decode(fa)
//	...
//	mixed, err := lpcmmix.MixSources(a, b, 8000, 0)
//	err = wav.WriteWAV16(out, 8000, mixed)
//
// Other frame widths or attenuation factors are configured through
// audio.MixerConfig and audio.NewLPCMMixer.
package lpcmmix
