package render

// Clock is a monotonic logical clock for transcript ordering.
//
// Events are stamped with a strictly increasing seq number rather than
// wall-clock time, so the same script always yields the same transcript.
type Clock struct {
	seq int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	c.seq++
	return c.seq
}

