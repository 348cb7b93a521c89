package render

import "errors"

// ErrScriptExhausted is returned by Script.Response once every scripted
// response has been consumed.
var ErrScriptExhausted = errors.New("script exhausted")

// Script is an in-memory boundary that answers from a fixed list of
// responses and captures the lines a terminal would have printed.
type Script struct {
	responses []string
	idx       int
	lines     []string
}

// NewScript creates a script that replies with responses in order.
func NewScript(responses ...string) *Script {
	return &Script{responses: responses}
}

// Question records the question.
func (s *Script) Question(text string) error {
	s.lines = append(s.lines, text)
	return nil
}

// Response returns the next scripted response, trimmed and lower-cased.
func (s *Script) Response() (string, error) {
	if s.idx >= len(s.responses) {
		return "", ErrScriptExhausted
	}
	r := s.responses[s.idx]
	s.idx++
	return normalize(r), nil
}

// Hint records the hint.
func (s *Script) Hint(text string) error {
	s.lines = append(s.lines, text)
	return nil
}

// Verdict records "Correct" or "Incorrect".
func (s *Script) Verdict(correct bool) error {
	s.lines = append(s.lines, VerdictText(correct))
	return nil
}

// Lines returns everything recorded so far.
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Remaining reports how many responses have not been read.
func (s *Script) Remaining() int {
	return len(s.responses) - s.idx
}
