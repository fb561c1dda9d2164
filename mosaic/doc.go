// SPDX-License-Identifier: EPL-2.0

// Package mosaic rebuilds a target recording out of frames taken from a source
// collection.
//
// For every target frame a Reconstructor searches the source table for the
// nearest frames by feature distance, picks one of them, reads the matching
// sample range through a cache.Segments and writes it into the output buffer at
// the target frame's offset. The output has exactly the length of the decoded
// target file; anything not covered by a frame stays silent.
//
// Frames are independent of each other and are resolved by a pool of workers.
// The usage log is indexed by frame, so it keeps target order whatever the
// completion order was. With a non-zero Options.Seed every frame draws from its
// own generator, and a run is reproducible regardless of the worker count.
package mosaic
