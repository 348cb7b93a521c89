// Package render provides the interaction boundaries a challenge is issued
// through.
//
//   - Terminal reads lines from an io.Reader and writes prompts, hints and
//     verdicts to an io.Writer, optionally styled with lipgloss.
//   - Script answers from an in-memory list of responses and captures what
//     would have been printed. It drives tests and YAML drill scenarios.
//   - Recorder wraps either and stamps every call with a logical sequence
//     number, producing the transcript used for JSON output and golden files.
//
// All three satisfy challenge.Renderer structurally; this package does not
// import challenge.
package render
