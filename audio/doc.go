// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding plumbing used to turn audio files into
// mono sample arrays.
//
// # Source Interface
//
// Every decoder produces a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel. ReadSamples
// returns io.EOF once the stream is exhausted.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	samples, err := audio.ReadAll(mono)
//
// # Format Registry
//
// Decoders are registered by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("ogg", vorbis.Decoder{})
//
// # Loading Files
//
// A FileLoader looks up the decoder for a path, decodes the whole file, mixes it
// down to mono and checks its sample rate against the corpus rate:
//
//	loader := audio.NewFileLoader(registry, 44100)
//	samples, err := loader.Load("raw/1234.ogg")
//	if errors.Is(err, audio.ErrSampleRateMismatch) {
//	    // the file must be converted before use
//	}
//
// Resampling is not performed; every file of a corpus is expected to share
// one sample rate.
package audio
