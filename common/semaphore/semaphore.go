/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package semaphore provides a counting semaphore used to bound the number of
// concurrent calls made to the proof backend.
package semaphore

import "context"

// Semaphore limits concurrency.
type Semaphore interface {
	// Acquire blocks until a permit is available or ctx is done.
	Acquire(ctx context.Context) error
	// Release returns a permit.
	Release()
}

// Counting is a buffered channel based counting semaphore.
type Counting struct {
	permits chan struct{}
}

// New creates a semaphore with the specified number of permits. A
// non-positive count yields Unbounded.
func New(permits int) Semaphore {
	if permits <= 0 {
		return Unbounded
	}
	return &Counting{permits: make(chan struct{}, permits)}
}

// Acquire acquires a permit. If ctx completes first its error is returned and
// no permit is held.
func (s *Counting) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.permits <- struct{}{}:
		return nil
	}
}

// TryAcquire acquires a permit only if one is immediately available.
func (s *Counting) TryAcquire() bool {
	select {
	case s.permits <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release releases a permit. Releasing more permits than were acquired
// panics.
func (s *Counting) Release() {
	select {
	case <-s.permits:
	default:
		panic("semaphore released more times than acquired")
	}
}

// InUse reports the number of permits currently held.
func (s *Counting) InUse() int { return len(s.permits) }

// Unbounded never blocks.
var Unbounded Semaphore = unbounded{}

type unbounded struct{}

func (unbounded) Acquire(ctx context.Context) error { return ctx.Err() }
func (unbounded) Release()                          {}
