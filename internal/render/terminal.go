package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompt is written before every response is read.
const Prompt = "> "

// Terminal is the line-oriented text device.
//
// Input is read by a single background goroutine so that a blocked read
// can be abandoned when the terminal's context is cancelled.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
	ctx   context.Context

	start sync.Once
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithColor enables lipgloss styling of questions, hints and verdicts.
func WithColor(enabled bool) TerminalOption {
	return func(t *Terminal) {
		t.color = enabled
	}
}

// WithContext makes Response give up when ctx is done. The returned error
// wraps ctx.Err().
func WithContext(ctx context.Context) TerminalOption {
	return func(t *Terminal) {
		t.ctx = ctx
	}
}

// NewTerminal reads responses from in and writes everything else to out.
func NewTerminal(in io.Reader, out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		ctx:   context.Background(),
		lines: make(chan readResult),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Question writes the question on its own line.
func (t *Terminal) Question(text string) error {
	return t.writeLine(t.styled(StyleQuestion.Render, text))
}

// Response prompts and reads one line. End of input with nothing typed is
// an error: the solver can no longer answer. So is a cancelled context,
// even while the read is still blocked.
func (t *Terminal) Response() (string, error) {
	if _, err := io.WriteString(t.out, Prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	if f, ok := t.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return "", fmt.Errorf("flushing prompt: %w", err)
		}
	}

	t.start.Do(func() { go t.readLoop() })

	select {
	case <-t.ctx.Done():
		return "", fmt.Errorf("reading response: %w", t.ctx.Err())
	case r, ok := <-t.lines:
		if !ok {
			return "", fmt.Errorf("reading response: %w", io.EOF)
		}
		if r.err != nil {
			if r.err == io.EOF && r.line != "" {
				return normalize(r.line), nil
			}
			return "", fmt.Errorf("reading response: %w", r.err)
		}
		return normalize(r.line), nil
	}
}

// readLoop feeds lines to Response until the input fails.
func (t *Terminal) readLoop() {
	defer close(t.lines)
	for {
		line, err := t.in.ReadString('\n')
		t.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Hint writes the revealed answer.
func (t *Terminal) Hint(text string) error {
	return t.writeLine(t.styled(StyleHint.Render, text))
}

// Verdict writes "Correct" or "Incorrect".
func (t *Terminal) Verdict(correct bool) error {
	text := VerdictText(correct)
	if correct {
		return t.writeLine(t.styled(StyleCorrect.Render, text))
	}
	return t.writeLine(t.styled(StyleIncorrect.Render, text))
}

func (t *Terminal) styled(render func(...string) string, text string) string {
	if !t.color {
		return text
	}
	return render(text)
}

func (t *Terminal) writeLine(text string) error {
	if _, err := fmt.Fprintln(t.out, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
