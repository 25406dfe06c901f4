package scanner

import (
	"fmt"
	"time"
)

// ProgressEvent is one entry of the scan's one-way status stream.
type ProgressEvent struct {
	Elapsed  time.Duration
	Fraction float64
	Message  string
}

func (e ProgressEvent) String() string {
	return fmt.Sprintf("[%.2fs] %s", e.Elapsed.Seconds(), e.Message)
}

// ProgressFunc receives progress events. It is fire-and-forget: the scan
// neither waits on it nor reads anything back, and a nil func is valid.
type ProgressFunc func(ProgressEvent)

type reporter struct {
	start time.Time
	fn    ProgressFunc
}

func newReporter(fn ProgressFunc) reporter {
	return reporter{start: time.Now(), fn: fn}
}

func (r reporter) stepf(fraction float64, format string, args ...any) {
	if r.fn == nil {
		return
	}
	r.fn(ProgressEvent{
		Elapsed:  time.Since(r.start),
		Fraction: fraction,
		Message:  fmt.Sprintf(format, args...),
	})
}
