// Package theory models the twelve-tone pitch classes and the diatonic
// vocabulary the drills are built on: interval steps, scale degrees, modes
// and seven-note scales.
//
// theory imports nothing internal. Every other internal package depends on
// it, so it stays free of I/O and randomness.
//
// Key design constraints:
//   - All values are small immutable value types (no pointers, no maps exposed)
//   - Transposition is always reduced modulo 12 into 0..11
//   - Sharps are canonicalized to flats when parsing ("c#" == "db")
package theory
