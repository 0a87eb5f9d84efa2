// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/lpcmmix/utils"
)

// ReadAllMono16 resamples src to targetRate, downmixes it to mono and reads
// it to the end as 16-bit PCM.
//
// bufferSize is the number of samples pulled per read; values <= 0 fall back
// to src.BufSize(). The stream is drained completely, io.EOF is not returned.
func ReadAllMono16(src Source, targetRate int, bufferSize int) ([]int16, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, targetRate)
	}

	if bufferSize <= 0 {
		bufferSize = max(src.BufSize(), 1)
	}

	var pipeline Source = src
	if src.SampleRate() != targetRate {
		pipeline = NewResampler(pipeline, targetRate)
	}
	mono := NewMonoMixer(pipeline)

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return pcm16, nil
}
