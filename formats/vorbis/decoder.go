// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/lpcmmix/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Format is the registry key for Ogg Vorbis files.
const Format = "ogg"

const defaultBufSamples = 4096

// oggReader is the part of oggvorbis.Reader the source needs. Read returns
// the number of float values written, always a whole number of frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec     oggReader
	bufSize int
}

func newSource(dec oggReader) *source {
	return &source{dec: dec, bufSize: defaultBufSamples}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// ReadSamples decodes straight into dst, trimmed to whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	channels := max(s.dec.Channels(), 1)

	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:frames*channels])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis packet: %w", err)
	}

	return n, err
}

// Decoder reads Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}
