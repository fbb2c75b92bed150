// Package schedule provides cancellable one-shot timers whose callbacks run
// on the owner's event loop rather than on a timer goroutine.
package schedule

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer (false if it already fired or was stopped).
	Stop() bool
}

// Scheduler arranges for f to run once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
