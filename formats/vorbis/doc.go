// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files, the format of most sound-library
// previews, through github.com/jfreymuth/oggvorbis.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("raw/1234.ogg")
//	source, err := decoder.Decode(file)
//	samples, err := audio.ReadAll(audio.NewMonoMixer(source))
//
// Samples are interleaved float32 values in [-1.0, 1.0].
package vorbis
