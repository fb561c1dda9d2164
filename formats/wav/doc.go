// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV files.
//
// Decoding and encoding are delegated to github.com/go-audio/wav; this package
// adapts them to audio.Source and float32 samples.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("target.wav")
//	source, err := decoder.Decode(file)
//
// Integer PCM at 16, 24 and 32 bits is supported, with any channel count and
// sample rate. Inputs that are not io.ReadSeeker are buffered in memory first.
//
// # Writing
//
// WriteMono stores a mono waveform as 16-bit PCM, clipping to [-1, 1]:
//
//	out, _ := os.Create("mosaic.wav")
//	err := wav.WriteMono(out, 44100, waveform)
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedEncoding: compressed, float or 8-bit data
//   - ErrInvalidSampleRate: WriteMono was given a non-positive rate
package wav
