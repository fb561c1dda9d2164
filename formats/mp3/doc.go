// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every decoded source reports two
// channels, also for mono files:
//
//	source, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(source)
package mp3
