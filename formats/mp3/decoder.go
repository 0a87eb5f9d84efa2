// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/lpcmmix/audio"
	"github.com/ik5/lpcmmix/utils"
)

// Format is the registry key for MPEG-1/2 Layer III files.
const Format = "mp3"

// go-mp3 always produces interleaved stereo.
const outputChannels = 2

const defaultBufSamples = 4096

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec     mp3Reader
	buf     []byte
	pending []byte // odd byte left over from the previous Read
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec: dec,
		buf: make([]byte, defaultBufSamples*utils.BytesPerSample),
	}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / utils.BytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst)*utils.BytesPerSample - len(s.pending)
	if cap(s.buf) < need+len(s.pending) {
		s.buf = make([]byte, need+len(s.pending))
	}

	buf := s.buf[:len(s.pending)+need]
	copy(buf, s.pending)

	n, err := s.dec.Read(buf[len(s.pending):])
	total := len(s.pending) + n

	samples := utils.BytesToInt16LE(buf[:total])
	s.pending = s.pending[:0]
	if total%utils.BytesPerSample == 1 {
		s.pending = append(s.pending, buf[total-1])
	}

	for i, v := range samples {
		dst[i] = utils.Int16ToFloat32(v)
	}

	if err != nil && err != io.EOF {
		return len(samples), fmt.Errorf("reading mp3 frame: %w", err)
	}

	return len(samples), err
}

// Decoder reads MP3 files through github.com/hajimehoshi/go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}
