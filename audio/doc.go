// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM mixing core and the decoding pipeline that
// feeds it.
//
// # Mixing
//
// LPCMMixer mixes two 16-bit signed little-endian PCM buffers:
//
//	mixer, _ := audio.NewLPCMMixer(audio.DefaultMixerConfig())
//	out := mixer.Mix(voice, music)
//
// A call decodes both buffers, pads the shorter with silence
// (PadWithSilence), mixes every complete frame (MixFrames) sample by sample
// (MixSample) and encodes the result. Per sample pair the mixer normalizes
// to [-1, 1), sums, multiplies by the attenuation (0.9 by default), clips to
// [-1, 1] and scales back to int16, truncating toward zero.
//
// Frames are SamplesPerFrame*Channels samples wide (4 by default). Samples
// after the last complete frame are not mixed and are not part of the output,
// so the output holds floor(n/4)*4 samples where n is the sample count of
// the longer input. An odd trailing byte of an input is ignored.
//
// Mixing never fails and keeps no state between calls; a single LPCMMixer
// may be shared across goroutines.
//
// # Source pipeline
//
// Encoded files are decoded into a Source, a stream of interleaved float32
// samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Resampler changes the sample rate with cubic interpolation and MonoMixer
// averages channels down to mono. ReadAllMono16 chains both and collects a
// whole Source as mono int16 at a target rate, ready for LPCMMixer.MixSamples:
//
//	pcm16, err := audio.ReadAllMono16(src, 8000, 4096)
//
// # Format registry
//
// Registry maps format keys to decoders and can pick one by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take1.wav")
//
// # Error handling
//
// Sources return io.EOF once drained. Configuration problems are reported
// with the sentinel errors in this package and can be tested with errors.Is.
package audio
