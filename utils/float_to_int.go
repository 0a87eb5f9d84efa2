// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCM16Scale maps a normalized float sample onto the int16 range.
const PCM16Scale float32 = 32768.0

// Int16ToFloat32 normalizes s into [-1, 1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / PCM16Scale
}

// Float32ToInt16 clamps x to [-1, 1], scales it by 32768 and truncates toward
// zero. +1.0 saturates to math.MaxInt16.
func Float32ToInt16(x float32) int16 {
	if x != x { // NaN
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := x * PCM16Scale
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}

	return int16(v)
}
