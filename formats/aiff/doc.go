// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit AIFF files with github.com/go-audio/aiff.
//
// Both ".aif" and ".aiff" map to this decoder in the formats registry.
// Samples are scaled by 1/32768, the same as the WAV decoder, so a file
// saved in either container mixes to identical output.
package aiff
