package ui

import (
	"sync/atomic"
	"time"
)

// StartMsg is sent once discovery finishes: the file total and the shared
// completion counter the model polls from then on.
type StartMsg struct {
	Total     int
	Completed *atomic.Int64
}

// DoneMsg is sent when the batch run has returned, error or not.
type DoneMsg struct {
	Err error
}

// tickMsg drives the periodic counter poll.
type tickMsg time.Time
