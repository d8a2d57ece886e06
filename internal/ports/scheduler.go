package ports

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled callback. Safe to call more than once.
type CancelFunc func()

// Scheduler abstracts deferred and periodic execution so the two-horizon
// refresh logic can run against a fake clock in tests.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) CancelFunc
	// Every runs fn repeatedly at interval d until cancelled.
	Every(d time.Duration, fn func()) CancelFunc
}

type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

func (SystemScheduler) Every(d time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
