// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package semaphore provides a named counting semaphore.
package semaphore

import (
	"context"
	"sync/atomic"
)

// Semaphore is a semaphore.
type Semaphore struct {
	name string
	ch   chan struct{}

	reqs atomic.Int64
}

// New creates a new semaphore with name and capacity.
// Capacity less than 1 is treated as 1.
func New(name string, n int) *Semaphore {
	if n < 1 {
		n = 1
	}
	return &Semaphore{
		name: name,
		ch:   make(chan struct{}, n),
	}
}

// WaitAcquire acquires a semaphore.
// It returns func to release it.
func (s *Semaphore) WaitAcquire(ctx context.Context) (func(), error) {
	select {
	case s.ch <- struct{}{}:
		s.reqs.Add(1)
		return func() { <-s.ch }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	}
}

// Do runs f under semaphore.
func (s *Semaphore) Do(ctx context.Context, f func(ctx context.Context) error) error {
	release, err := s.WaitAcquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return f(ctx)
}

// Name returns name of the semaphore.
func (s *Semaphore) Name() string {
	return s.name
}

// Capacity returns capacity of the semaphore.
func (s *Semaphore) Capacity() int {
	return cap(s.ch)
}

// NumServs returns number of currently served.
func (s *Semaphore) NumServs() int {
	return len(s.ch)
}

// NumRequests returns total number of served requests.
func (s *Semaphore) NumRequests() int {
	return int(s.reqs.Load())
}
