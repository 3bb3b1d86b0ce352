// Package utils holds small client-side helpers shared across the CLI.
package utils

import (
	"sync"
	"time"
)

// Debounce wraps fn so that only the last call within a quiet period of
// delay actually executes, asynchronously, with the latest argument.
// Each call cancels and replaces any pending invocation; no two timers for
// the same wrapper are ever pending at once.
func Debounce[T any](fn func(T), delay time.Duration) func(T) {
	var mu sync.Mutex
	var timer *time.Timer

	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			fn(arg)
		})
	}
}
