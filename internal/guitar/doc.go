// Package guitar maps the pitch classes of package theory onto the strings
// and frets of a tuned six-string guitar.
//
// Tunings are fixed process-wide tables; a Guitar only records which one it
// was built with. Frets are reported in 0..11, the octave above wraps.
package guitar
