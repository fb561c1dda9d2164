// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audmosaic/audio"
	"github.com/ik5/audmosaic/internal/pcm"
)

const formatPCM = 1

type Decoder struct{}

// Decode validates the WAV header; PCM data is read lazily by the returned source.
// Inputs that cannot seek are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	switch {
	case dec.WavAudioFormat != formatPCM:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	case dec.BitDepth != 16 && dec.BitDepth != 24 && dec.BitDepth != 32:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedEncoding, dec.BitDepth)
	}

	return pcm.NewSource(dec, dec.Format(), int(dec.BitDepth)), nil
}
