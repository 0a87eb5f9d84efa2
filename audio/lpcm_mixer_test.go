// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/lpcmmix/utils"
)

func newDefaultMixer(t *testing.T) *LPCMMixer {
	t.Helper()

	m, err := NewLPCMMixer(DefaultMixerConfig())
	if err != nil {
		t.Fatalf("NewLPCMMixer() error = %v", err)
	}

	return m
}

func pcm(samples ...int16) []byte {
	return utils.Int16ToBytesLE(samples)
}

func TestDefaultMixerConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultMixerConfig()
	if cfg.SamplesPerFrame != 4 || cfg.Channels != 1 || cfg.Attenuation != 0.9 {
		t.Errorf("DefaultMixerConfig() = %+v", cfg)
	}

	if cfg.FrameWidth() != 4 {
		t.Errorf("FrameWidth() = %d, want 4", cfg.FrameWidth())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestNewLPCMMixer_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  MixerConfig
		want error
	}{
		{name: "zero frame", cfg: MixerConfig{SamplesPerFrame: 0, Channels: 1, Attenuation: 0.9}, want: ErrInvalidFrameSize},
		{name: "negative frame", cfg: MixerConfig{SamplesPerFrame: -4, Channels: 1, Attenuation: 0.9}, want: ErrInvalidFrameSize},
		{name: "zero channels", cfg: MixerConfig{SamplesPerFrame: 4, Channels: 0, Attenuation: 0.9}, want: ErrInvalidChannels},
		{name: "zero attenuation", cfg: MixerConfig{SamplesPerFrame: 4, Channels: 1, Attenuation: 0}, want: ErrInvalidAttenuation},
		{name: "gain above one", cfg: MixerConfig{SamplesPerFrame: 4, Channels: 1, Attenuation: 1.5}, want: ErrInvalidAttenuation},
		{name: "NaN attenuation", cfg: MixerConfig{SamplesPerFrame: 4, Channels: 1, Attenuation: float32(math.NaN())}, want: ErrInvalidAttenuation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewLPCMMixer(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewLPCMMixer() error = %v, want %v", err, tt.want)
			}

			if m != nil {
				t.Error("NewLPCMMixer() returned a mixer alongside an error")
			}
		})
	}
}

func TestLPCMMixer_OutputLength(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	tests := []struct {
		n1, n2 int
		want   int
	}{
		{n1: 0, n2: 0, want: 0},
		{n1: 1, n2: 0, want: 0},
		{n1: 1, n2: 1, want: 0},
		{n1: 8, n2: 0, want: 8},
		{n1: 7, n2: 8, want: 8},
		{n1: 15, n2: 16, want: 16},
		{n1: 17, n2: 3, want: 16},
		{n1: 18, n2: 18, want: 16},
		{n1: 5, n2: 24, want: 24},
		{n1: 25, n2: 9, want: 24},
		{n1: 100, n2: 33, want: 96},
	}

	for _, tt := range tests {
		a := bytes.Repeat([]byte{0x11}, tt.n1)
		b := bytes.Repeat([]byte{0x22}, tt.n2)

		got := m.Mix(a, b)
		if len(got) != tt.want {
			t.Errorf("Mix(%d bytes, %d bytes) len = %d, want %d", tt.n1, tt.n2, len(got), tt.want)
		}

		// 2 * floor(floor(max(n1,n2)/2) / 4) * 4
		if formula := 2 * ((max(tt.n1, tt.n2) / 2) / 4) * 4; formula != tt.want {
			t.Errorf("table entry (%d, %d) disagrees with length formula %d", tt.n1, tt.n2, formula)
		}
	}
}

func TestLPCMMixer_EmptyInputs(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	got := m.Mix(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Mix(nil, nil) = %v, want empty non-nil buffer", got)
	}
}

func TestLPCMMixer_SilenceIdentity(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	in := []int16{16384, -16384, 10000, -10000, 100, 1, math.MaxInt16, math.MinInt16}
	want := []int16{14745, -14745, 9000, -9000, 90, 0, 29490, -29491}

	got := utils.BytesToInt16LE(m.Mix(pcm(in...), make([]byte, 2*len(in))))
	if !slices.Equal(got, want) {
		t.Errorf("Mix(x, silence) = %v, want %v", got, want)
	}

	for i, s := range in {
		if got[i] != MixSample(s, 0) {
			t.Errorf("sample %d = %d, want MixSample(%d, 0) = %d", i, got[i], s, MixSample(s, 0))
		}
	}
}

func TestLPCMMixer_Symmetry(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	a := make([]int16, 64)
	b := make([]int16, 64)
	for i := range a {
		a[i] = int16((i*7919)%65536 - 32768)
		b[i] = int16((i*104729)%65536 - 32768)
	}

	ab := m.Mix(pcm(a...), pcm(b...))
	ba := m.Mix(pcm(b...), pcm(a...))

	if !bytes.Equal(ab, ba) {
		t.Error("Mix(a, b) != Mix(b, a)")
	}
}

func TestLPCMMixer_ClippingBound(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	a := []int16{math.MaxInt16, math.MinInt16, math.MaxInt16, math.MinInt16, 30000, -30000, 25000, -25000}
	b := []int16{math.MaxInt16, math.MinInt16, math.MinInt16, math.MaxInt16, 30000, -30000, 25000, -25000}

	got := utils.BytesToInt16LE(m.Mix(pcm(a...), pcm(b...)))
	want := []int16{math.MaxInt16, math.MinInt16, 0, 0, math.MaxInt16, math.MinInt16, math.MaxInt16, math.MinInt16}

	if !slices.Equal(got, want) {
		t.Errorf("Mix(full scale) = %v, want %v", got, want)
	}
}

func TestLPCMMixer_PaddingSemantics(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	short := []int16{1000, 2000, 3000, 4000}
	long := []int16{100, 200, 300, 400, 16384, -16384, 10000, -10000, 5000, -5000, 8000, 0}

	got := m.MixSamples(short, long)
	if len(got) != 12 {
		t.Fatalf("MixSamples() len = %d, want 12", len(got))
	}

	for i := range 4 {
		if want := MixSample(short[i], long[i]); got[i] != want {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want)
		}
	}

	tail := []int16{14745, -14745, 9000, -9000, 4500, -4500, 7200, 0}
	if !slices.Equal(got[4:], tail) {
		t.Errorf("tail = %v, want %v", got[4:], tail)
	}

	// order of arguments does not matter for padding
	if rev := m.MixSamples(long, short); !slices.Equal(rev, got) {
		t.Errorf("MixSamples(long, short) = %v, want %v", rev, got)
	}
}

func TestLPCMMixer_TruncatesIncompleteFrame(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	a := []int16{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []int16{9, 8, 7, 6, 5, 4, 3, 2, 1}

	got := m.Mix(pcm(a...), pcm(b...))
	if len(got) != 16 {
		t.Fatalf("Mix(9 samples, 9 samples) len = %d bytes, want 16", len(got))
	}

	samples := utils.BytesToInt16LE(got)
	for i := range samples {
		if want := MixSample(a[i], b[i]); samples[i] != want {
			t.Errorf("sample %d = %d, want %d", i, samples[i], want)
		}
	}
}

func TestLPCMMixer_OddByteDropped(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	a := append(pcm(16384, 16384, 16384, 16384), 0x7f)
	b := pcm(0, 0, 0, 0)

	got := utils.BytesToInt16LE(m.Mix(a, b))
	if !slices.Equal(got, []int16{14745, 14745, 14745, 14745}) {
		t.Errorf("Mix(odd length) = %v", got)
	}
}

func TestLPCMMixer_StereoFrames(t *testing.T) {
	t.Parallel()

	m, err := NewLPCMMixer(MixerConfig{SamplesPerFrame: 4, Channels: 2, Attenuation: 1})
	if err != nil {
		t.Fatalf("NewLPCMMixer() error = %v", err)
	}

	a := make([]int16, 20)
	for i := range a {
		a[i] = int16(i)
	}

	got := m.MixSamples(a, nil)
	if len(got) != 16 {
		t.Fatalf("MixSamples() len = %d, want 16", len(got))
	}

	if !slices.Equal(got, a[:16]) {
		t.Errorf("MixSamples() at unity with silence = %v, want %v", got, a[:16])
	}
}

func TestLPCMMixer_DoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)

	a := pcm(100, 200, 300, 400)
	b := pcm(-1, -2)
	aCopy := slices.Clone(a)
	bCopy := slices.Clone(b)

	_ = m.Mix(a, b)

	if !bytes.Equal(a, aCopy) || !bytes.Equal(b, bCopy) {
		t.Error("Mix() modified its inputs")
	}
}

func TestLPCMMixer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	m := newDefaultMixer(t)
	a := pcm(16384, -16384, 10000, -10000)
	want := m.Mix(a, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 100 {
				if got := m.Mix(a, nil); !bytes.Equal(got, want) {
					t.Error("concurrent Mix() returned a different result")
					return
				}
			}
		})
	}
	wg.Wait()
}

func BenchmarkLPCMMixer_Mix(b *testing.B) {
	m, _ := NewLPCMMixer(DefaultMixerConfig())
	a := bytes.Repeat([]byte{0x10, 0x20}, 8000)
	c := bytes.Repeat([]byte{0x30, 0xf0}, 8000)

	b.ReportAllocs()
	for b.Loop() {
		_ = m.Mix(a, c)
	}
}
