// SPDX-License-Identifier: EPL-2.0

// Package frame defines the per-frame feature records consumed by the mosaic
// engine and the tables that hold them.
//
// A Record carries provenance (source id, frame id, file path and sample range)
// plus the acoustic features produced by an external analysis library:
// loudness, 13 MFCC coefficients, key (pitch class 0..11), scale and key strength.
//
// Feature columns are addressed through the Feature type rather than by name:
//
//	cols := frame.MFCC()
//	vec := rec.Vector(cols)
//
// Tables are validated once, at construction:
//
//	table, err := frame.NewTable(records)
//	if errors.Is(err, frame.ErrInvalidRecord) {
//	    // a record violates an invariant
//	}
//
// Tables are read-only after construction and safe for concurrent use.
package frame
