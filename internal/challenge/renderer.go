package challenge

// Renderer is the interaction boundary a Challenge is issued through.
//
// Response returns the next line of input, trimmed and lower-cased, and
// blocks until one is available. Any error from a Renderer is fatal to the
// challenge in progress.
//
// Implemented by render.Terminal, render.Script and render.Recorder.
type Renderer interface {
	Question(text string) error
	Response() (string, error)
	Hint(text string) error
	Verdict(correct bool) error
}
