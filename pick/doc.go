// SPDX-License-Identifier: EPL-2.0

// Package pick chooses one frame out of a ranked candidate set.
//
// Always taking the closest match makes a mosaic reuse a handful of source
// frames over and over, so Ranked spreads the choice over the k neighbours with
// linearly decreasing weights, and Uniform picks any of them with equal chance.
package pick
