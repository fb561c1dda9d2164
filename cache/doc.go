// SPDX-License-Identifier: EPL-2.0

// Package cache memoizes decoded waveforms by file path and serves sample-range
// reads from memory.
//
// A Segments cache is an explicit object owned by the caller, usually one per
// reconstruction run:
//
//	c := cache.New(loader.Load)
//	seg, err := c.Read("raw/1234.ogg", 44100, 1024)
//	...
//	c.Clear() // drop everything before the next run
//
// A file is decoded at most once while it stays cached, even when many
// goroutines miss on the same path at the same time.
package cache
