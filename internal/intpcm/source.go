// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio style decoders, which fill integer buffers,
// to the float32 audio.Source contract.
package intpcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is implemented by go-audio wav and aiff decoders.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source serves samples from a Reader normalized to [-1, 1].
type Source struct {
	r          Reader
	format     *goaudio.Format
	bitDepth   int
	scale      float32
	buf        *goaudio.IntBuffer
	done       bool
	defaultBuf int
}

// NewSource wraps r. bitDepth selects the normalization scale.
func NewSource(r Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		r:          r,
		format:     &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		bitDepth:   bitDepth,
		scale:      FullScale(bitDepth),
		defaultBuf: 4096,
	}
}

// FullScale is the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}

	return s.defaultBuf
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.done {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.r.PCMBuffer(s.buf)
	n = min(n, len(dst))

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	case n < len(dst):
		// go-audio decoders return short reads only at the end of the data
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r itself when it can seek, otherwise its contents
// buffered in memory. go-audio decoders move around the container chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.NewReader(data), nil
}
