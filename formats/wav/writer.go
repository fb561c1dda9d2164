// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audmosaic/utils"
)

const writeChunk = 8192

// WriteMono encodes float samples in [-1,1] as a mono 16-bit PCM WAV.
// Values outside the range are clipped.
func WriteMono(w io.WriteSeeker, sampleRate int, samples []float32) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), writeChunk)),
		SourceBitDepth: 16,
	}

	for start := 0; start < len(samples); start += writeChunk {
		chunk := samples[start:min(start+writeChunk, len(samples))]

		buf.Data = buf.Data[:0]
		for _, s := range chunk {
			buf.Data = append(buf.Data, int(utils.Float32ToInt16(s)))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if len(samples) == 0 {
		// the header is only emitted by Write
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
