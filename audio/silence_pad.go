// SPDX-License-Identifier: EPL-2.0

package audio

// PadWithSilence returns a and b at equal length: the shorter one is copied
// and extended with zero samples up to the length of the longer one. The
// longer one is returned as-is and is never truncated.
func PadWithSilence(a, b []int16) ([]int16, []int16) {
	switch {
	case len(a) < len(b):
		return extend(a, len(b)), b
	case len(b) < len(a):
		return a, extend(b, len(a))
	default:
		return a, b
	}
}

func extend(s []int16, n int) []int16 {
	out := make([]int16, n)
	copy(out, s)

	return out
}
