// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/lpcmmix/internal/audiotest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("mp3"); ok {
		t.Error("Registry.Get() returned ok=true for unregistered format")
	}
}

func TestRegistry_KeysAreNormalized(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register(".WAV", decoder)

	for _, key := range []string{"wav", "WAV", ".wav", ".Wav"} {
		if got, ok := registry.Get(key); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v", key, got, ok)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Register() did not replace the earlier decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", "wav", "mp3"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	if got := registry.Formats(); !slices.Equal(got, []string{"mp3", "ogg", "wav"}) {
		t.Errorf("Registry.Formats() = %v", got)
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "mp3"}
	registry.Register("mp3", decoder)

	got, err := registry.ForPath("/music/Track.MP3")
	if err != nil {
		t.Fatalf("Registry.ForPath() error = %v", err)
	}

	if got != decoder {
		t.Error("Registry.ForPath() returned the wrong decoder")
	}

	for _, path := range []string{"song.flac", "noext"} {
		if _, err := registry.ForPath(path); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Registry.ForPath(%q) error = %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			key := string(rune('a' + i))
			registry.Register(key, &mockDecoder{name: key})
			registry.Get(key)
			registry.Formats()
		})
	}
	wg.Wait()

	if got := len(registry.Formats()); got != 16 {
		t.Errorf("len(Registry.Formats()) = %d, want 16", got)
	}
}
