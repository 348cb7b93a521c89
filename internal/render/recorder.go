package render

// EventType names a boundary call in a transcript.
type EventType string

const (
	EventRound    EventType = "round"
	EventQuestion EventType = "question"
	EventResponse EventType = "response"
	EventHint     EventType = "hint"
	EventVerdict  EventType = "verdict"
)

// Event is one stamped boundary call.
//
// Text carries the question, response, hint or round kind. Correct is only
// meaningful for EventVerdict.
type Event struct {
	Seq     int64     `json:"seq"`
	Type    EventType `json:"type"`
	Round   int       `json:"round"`
	Text    string    `json:"text,omitempty"`
	Correct bool      `json:"correct,omitempty"`
}

// SeqClock stamps events. Implemented by Clock.
type SeqClock interface {
	Next() int64
}

// renderer mirrors challenge.Renderer so this package stays a leaf.
type renderer interface {
	Question(text string) error
	Response() (string, error)
	Hint(text string) error
	Verdict(correct bool) error
}

// Recorder forwards to another boundary and keeps a transcript.
// Calls that fail are not recorded.
type Recorder struct {
	next   renderer
	clock  SeqClock
	round  int
	events []Event
}

// NewRecorder wraps next. A nil clock uses a fresh Clock.
func NewRecorder(next renderer, clock SeqClock) *Recorder {
	if clock == nil {
		clock = NewClock()
	}
	return &Recorder{next: next, clock: clock}
}

// BeginRound marks the start of a new challenge in the transcript.
func (r *Recorder) BeginRound(round int, kind string) {
	r.round = round
	r.record(Event{Type: EventRound, Text: kind})
}

// Question implements challenge.Renderer.
func (r *Recorder) Question(text string) error {
	if err := r.next.Question(text); err != nil {
		return err
	}
	r.record(Event{Type: EventQuestion, Text: text})
	return nil
}

// Response implements challenge.Renderer.
func (r *Recorder) Response() (string, error) {
	text, err := r.next.Response()
	if err != nil {
		return "", err
	}
	r.record(Event{Type: EventResponse, Text: text})
	return text, nil
}

// Hint implements challenge.Renderer.
func (r *Recorder) Hint(text string) error {
	if err := r.next.Hint(text); err != nil {
		return err
	}
	r.record(Event{Type: EventHint, Text: text})
	return nil
}

// Verdict implements challenge.Renderer.
func (r *Recorder) Verdict(correct bool) error {
	if err := r.next.Verdict(correct); err != nil {
		return err
	}
	r.record(Event{Type: EventVerdict, Text: VerdictText(correct), Correct: correct})
	return nil
}

// Events returns the transcript so far.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Transcript converts the events to plain maps for canonical JSON.
func (r *Recorder) Transcript() []any {
	out := make([]any, len(r.events))
	for i, e := range r.events {
		m := map[string]any{
			"seq":   e.Seq,
			"type":  string(e.Type),
			"round": e.Round,
		}
		if e.Text != "" {
			m["text"] = e.Text
		}
		if e.Type == EventVerdict {
			m["correct"] = e.Correct
		}
		out[i] = m
	}
	return out
}

func (r *Recorder) record(e Event) {
	e.Seq = r.clock.Next()
	e.Round = r.round
	r.events = append(r.events, e)
}
