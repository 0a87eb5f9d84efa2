// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/lpcmmix/audio"
	"github.com/ik5/lpcmmix/formats/aiff"
	"github.com/ik5/lpcmmix/formats/mp3"
	"github.com/ik5/lpcmmix/formats/vorbis"
	"github.com/ik5/lpcmmix/formats/wav"
)

// NewRegistry returns a registry keyed by file extension for WAV, MP3,
// Ogg Vorbis and AIFF.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register(wav.Format, wav.Decoder{})
	r.Register(mp3.Format, mp3.Decoder{})
	r.Register(vorbis.Format, vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register(aiff.Format, aiff.Decoder{})
	r.Register(aiff.ShortFormat, aiff.Decoder{})

	return r
}
