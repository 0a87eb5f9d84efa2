// SPDX-License-Identifier: EPL-2.0

package audio

// DefaultSamplesPerFrame is the number of samples per channel handed to the
// sample mixer as one frame.
const DefaultSamplesPerFrame = 4

// MixFrames mixes a and b frame by frame into dst and returns the number of
// samples written.
//
// A frame is samplesPerFrame*channels interleaved samples. Only complete
// frames are mixed: numFrames = len(a) / frameWidth, and anything past
// numFrames*frameWidth is left untouched in dst. a and b are expected to have
// equal length (see PadWithSilence); the shortest of dst, a and b bounds the mix.
func MixFrames(dst, a, b []int16, samplesPerFrame, channels int, mix SampleMixFunc) int {
	width := samplesPerFrame * channels
	if width <= 0 || mix == nil {
		return 0
	}

	n := min(len(a), len(b), len(dst))
	frames := n / width

	for i := range frames {
		start := i * width
		end := start + width
		mixFrame(dst[start:end], a[start:end], b[start:end], samplesPerFrame, channels, mix)
	}

	return frames * width
}

// mixFrame mixes a single interleaved frame. Every channel is mixed the same
// way, so the layout only matters for the frame width.
func mixFrame(out, f1, f2 []int16, samplesPerFrame, channels int, mix SampleMixFunc) {
	for i := range samplesPerFrame * channels {
		out[i] = mix(f1[i], f2[i])
	}
}
