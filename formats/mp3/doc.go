// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields interleaved stereo 16-bit samples at the stream's
// native rate, so every Source from this package reports two channels.
// Before mixing, collapse and resample it with the audio package:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	samples, err := audio.ReadAllMono16(src, 8000, 0)
package mp3
