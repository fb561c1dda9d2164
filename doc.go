// SPDX-License-Identifier: EPL-2.0

// Package audmosaic rebuilds a target recording out of short frames of other
// recordings, a technique known as audio mosaicing.
//
// The work is split over small packages that can be used on their own:
//   - segment cuts a waveform into fixed size or beat synchronous frames
//   - frame holds the per-frame feature records and reads/writes them as CSV
//   - cache decodes each audio file once and serves sample ranges from it
//   - match finds the nearest source frames by feature distance
//   - pick chooses one of the nearest frames, optionally at random
//   - mosaic drives all of the above for every frame of a target
//
// This package wires them to the decoders under formats/.
//
// # Quick Start
//
// Feature extraction is done by an external analyzer. Wrap it in a
// frame.Analyzer and build one table per recording:
//
//	loader := audmosaic.NewLoader(44100)
//
//	target, _ := audmosaic.AnalyzeFile(loader, "target", "target.wav", audmosaic.AnalyzeOptions{
//		FrameSize: 4096,
//		Analyzer:  analyzer,
//	})
//
// Source tables are usually produced once and stored with frame.WriteCSV.
// Reconstruct the target and write the result:
//
//	rec, _ := mosaic.New(cache.New(loader.Load), mosaic.DefaultOptions())
//	res, _ := audmosaic.Render(ctx, rec, target, source, "out.wav", 44100)
//	fmt.Println(res.Usage)
//
// # Supported Formats
//
// NewLoader registers:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//
// Every file is mixed down to mono. All files of a run must share the sample
// rate given to NewLoader; there is no resampling.
package audmosaic
