// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmosaic/audio"
)

func writeTemp(t *testing.T, rate int, samples []float32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := WriteMono(f, rate, samples); err != nil {
		t.Fatalf("WriteMono() error = %v", err)
	}
	return path
}

func TestWriteMono_DecodesBack(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 20000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	path := writeTemp(t, 22050, samples)
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 || src.Channels() != 1 {
		t.Errorf("decoded %d ch @ %d Hz, want 1 ch @ 22050 Hz", src.Channels(), src.SampleRate())
	}

	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i := range got {
		if math.Abs(float64(got[i]-samples[i])) > 2.0/32768 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestWriteMono_Clips(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, 8000, []float32{2, -2})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// non-seekable input goes through the in-memory path
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 2 || got[0] < 0.999 || got[1] > -0.999 {
		t.Errorf("clipped samples = %v, want ~[1 -1]", got)
	}
}

func TestWriteMono_Empty(t *testing.T) {
	t.Parallel()

	f, err := os.Open(writeTemp(t, 8000, nil))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got, _ := audio.ReadAll(src); len(got) != 0 {
		t.Errorf("decoded %d samples from an empty file", len(got))
	}
}

func TestWriteMono_InvalidRate(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := WriteMono(f, 0, []float32{0}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("WriteMono() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestDecoder_NotWAV(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE AT ALL, JUST SOME BYTES HERE..")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}
