// SPDX-License-Identifier: EPL-2.0

package utils

// BytesPerSample is the width of a single 16-bit PCM sample.
const BytesPerSample = 2

// BytesToInt16LE reads b as consecutive little-endian signed 16-bit samples.
// A dangling odd byte at the end of b is ignored.
func BytesToInt16LE(b []byte) []int16 {
	samples := make([]int16, len(b)/BytesPerSample)
	for i := range samples {
		lo := uint16(b[2*i])
		hi := uint16(b[2*i+1])
		samples[i] = int16(lo | hi<<8)
	}

	return samples
}

// Int16ToBytesLE writes every sample as two little-endian bytes.
func Int16ToBytesLE(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		v := uint16(s)
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}

	return out
}
