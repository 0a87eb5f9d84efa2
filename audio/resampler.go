// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/lpcmmix/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter run over the input
// when downsampling.
const lowPassAlpha float32 = 0.5

// Resampler streams src at another sample rate using Catmull-Rom cubic
// interpolation. Channel count is preserved.
//
// For n source frames the resampler produces ceil(n*dstRate/srcRate) frames;
// positions past the last source frame hold it. Equal rates pass samples
// through unchanged.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window holds frames base-1, base, base+1 and base+2.
	window [4][]float32
	base   int
	pos    float64 // fractional position between window[1] and window[2]

	primed bool
	srcEOF bool
	ended  bool // last is known
	last   int  // index of the final source frame

	readBuf []float32

	lowPass  bool
	filtered []float32
	seeded   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		readBuf:  make([]float32, channels),
		lowPass:  step > 1.0,
		filtered: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved frames at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1.0 {
			if err := r.advance(); err != nil {
				return written, err
			}
			r.pos -= 1.0
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}

// prime loads frame 0 and the two frames after it. Frame 0 doubles as its own
// history.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}

	if !ok {
		r.ended, r.last = true, -1
		return io.EOF
	}

	copy(r.window[0], r.window[1])

	for slot := 2; slot < len(r.window); slot++ {
		if err := r.fill(slot, slot-1); err != nil {
			return err
		}
	}

	return nil
}

// advance rotates the window by one frame.
func (r *Resampler) advance() error {
	oldest := r.window[0]
	copy(r.window[:3], r.window[1:])
	r.window[3] = oldest
	r.base++

	if r.ended && r.base > r.last {
		return io.EOF
	}

	return r.fill(3, r.base+2)
}

// fill reads frame index into slot, or repeats the previous slot once the
// source is exhausted.
func (r *Resampler) fill(slot, index int) error {
	ok, err := r.readFrame(r.window[slot])
	if err != nil {
		return err
	}

	if !ok {
		copy(r.window[slot], r.window[slot-1])
		if !r.ended {
			r.ended, r.last = true, index-1
		}
	}

	return nil
}

func (r *Resampler) readFrame(frame []float32) (bool, error) {
	if r.srcEOF {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.readBuf)
	got := n > 0
	if got {
		copy(frame, r.readBuf[:n])
		clear(frame[n:])
		r.filter(frame)
	}

	if errors.Is(err, io.EOF) {
		r.srcEOF = true
		return got, nil
	}

	if err != nil {
		return got, fmt.Errorf("reading source: %w", err)
	}

	if !got {
		// a source that returns nothing without an error is treated as drained
		r.srcEOF = true
	}

	return got, nil
}

// filter runs the anti-aliasing low-pass over frame when downsampling.
func (r *Resampler) filter(frame []float32) {
	if !r.lowPass {
		return
	}

	if !r.seeded {
		copy(r.filtered, frame)
		r.seeded = true
		return
	}

	for c := range frame {
		r.filtered[c] = lowPassAlpha*frame[c] + (1-lowPassAlpha)*r.filtered[c]
		frame[c] = r.filtered[c]
	}
}
