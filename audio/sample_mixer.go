// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/lpcmmix/utils"

// DefaultAttenuation is the headroom applied to every mixed sample so two
// near full scale sources clip less often.
const DefaultAttenuation float32 = 0.9

// SampleMixFunc combines two same-position samples into one.
type SampleMixFunc func(s1, s2 int16) int16

// MixSample mixes two samples with DefaultAttenuation.
//
// Both samples are normalized to [-1, 1), summed, attenuated, clipped to
// [-1, 1] and scaled back to int16. The scale back truncates toward zero
// (0.9 * 16384 / 32768 gives 14745, not 14746), so the result of a sample
// mixed with silence is at most one step smaller than the exact product.
// The function is total over all int16 pairs.
func MixSample(s1, s2 int16) int16 {
	return MixSampleWith(s1, s2, DefaultAttenuation)
}

// MixSampleWith is MixSample with an explicit attenuation factor.
func MixSampleWith(s1, s2 int16, attenuation float32) int16 {
	mixed := utils.Int16ToFloat32(s1) + utils.Int16ToFloat32(s2)
	mixed *= attenuation

	// clip, scale and truncate
	return utils.Float32ToInt16(mixed)
}

// Attenuated returns a SampleMixFunc bound to attenuation.
func Attenuated(attenuation float32) SampleMixFunc {
	if attenuation == DefaultAttenuation {
		return MixSample
	}

	return func(s1, s2 int16) int16 {
		return MixSampleWith(s1, s2, attenuation)
	}
}
