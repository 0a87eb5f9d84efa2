// SPDX-License-Identifier: EPL-2.0

// Package loader turns input files into the PCM16LE buffers the mixer
// consumes, decoding containers through an audio.Registry.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/lpcmmix/audio"
	"github.com/ik5/lpcmmix/internal/logging"
	"github.com/ik5/lpcmmix/utils"
	"golang.org/x/sync/errgroup"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// ErrEmptyPath is returned by Load for an empty input path.
var ErrEmptyPath = errors.New("empty input path")

type Options struct {
	// SampleRate decoded inputs are resampled to.
	SampleRate int
	// BufferSize in samples per read; 0 uses the decoder's preference.
	BufferSize int
	// Raw reads files as PCM16LE without decoding.
	Raw bool
}

// Loader reads mixer inputs. It is safe for concurrent use as long as at
// most one input is Stdin.
type Loader struct {
	reg   *audio.Registry
	opts  Options
	stdin io.Reader
}

// New returns a Loader that decodes through reg.
func New(reg *audio.Registry, opts Options) *Loader {
	return &Loader{reg: reg, opts: opts, stdin: os.Stdin}
}

// Load returns the PCM16LE contents of path. Containers are decoded,
// downmixed to mono and resampled to Options.SampleRate; raw inputs are
// returned as read.
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.opts.Raw {
		return l.loadRaw(path)
	}

	dec, err := l.reg.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	logging.Debugf("decoding %s: %d Hz, %d channel(s) -> %d Hz mono",
		path, src.SampleRate(), src.Channels(), l.opts.SampleRate)

	samples, err := audio.ReadAllMono16(&ctxSource{Source: src, ctx: ctx}, l.opts.SampleRate, l.opts.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	logging.Infof("loaded %s: %d samples", path, len(samples))

	return utils.Int16ToBytesLE(samples), nil
}

func (l *Loader) loadRaw(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if path == Stdin {
		data, err = io.ReadAll(l.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(data)%utils.BytesPerSample != 0 {
		logging.Warnf("%s: odd length %d, trailing byte ignored", path, len(data))
	}

	logging.Infof("loaded raw %s: %d bytes", path, len(data))

	return data, nil
}

// LoadPair loads a and b concurrently. The first failure cancels the other.
func (l *Loader) LoadPair(ctx context.Context, a, b string) ([]byte, []byte, error) {
	if a == Stdin && b == Stdin {
		return nil, nil, errors.New("only one input can read from stdin")
	}

	var bufA, bufB []byte

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		bufA, err = l.Load(ctx, a)
		return err
	})

	eg.Go(func() error {
		var err error
		bufB, err = l.Load(ctx, b)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return bufA, bufB, nil
}

// ctxSource stops a decode between reads once ctx is done.
type ctxSource struct {
	audio.Source
	ctx context.Context
}

func (s *ctxSource) ReadSamples(dst []float32) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	return s.Source.ReadSamples(dst)
}
