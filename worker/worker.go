// seehuhn.de/go/implicit - contour lines of implicit equations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package worker runs expensive computations one at a time, dropping
// requests which have been overtaken by newer ones.
//
// A [Coalescer] has room for one running call and one waiting call. When
// a request arrives while another one is running, it takes the place of
// any waiting request, whose caller is told that it was superseded. Once
// the running call returns or times out, the waiting request is started.
// This is the usual behaviour needed for interactive recomputation, where
// only the most recent input matters.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

var (
	// ErrSuperseded is returned to callers whose request was replaced by
	// a newer one, either while waiting or while running.
	ErrSuperseded = errors.New("worker: request superseded")

	// ErrTimeout is returned if a call does not finish within the
	// configured timeout.
	ErrTimeout = errors.New("worker: request timed out")

	// ErrClosed is returned by Do after Close has been called.
	ErrClosed = errors.New("worker: closed")
)

// PanicError reports a panic in the work function.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("worker: panic: %v", e.Value)
}

// Options configures a [Coalescer].
type Options struct {
	// Timeout bounds the time a single call may run. Zero means no
	// limit.
	Timeout time.Duration
}

// Func is the work done for one request. The context is cancelled when
// the call times out or the coalescer is closed; honouring it is
// optional.
type Func[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Coalescer serialises calls to a work function.
// It is safe for concurrent use.
type Coalescer[Req, Res any] struct {
	work    Func[Req, Res]
	timeout time.Duration

	base   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
	closed  bool
	pending *call[Req, Res]
	seq     uint64 // sequence number of the most recent request
}

type call[Req, Res any] struct {
	req  Req
	seq  uint64
	done chan result[Res] // receives exactly one value
}

type result[Res any] struct {
	val Res
	err error
}

// New creates a Coalescer for the given work function.
func New[Req, Res any](work Func[Req, Res], opt Options) *Coalescer[Req, Res] {
	base, cancel := context.WithCancel(context.Background())
	return &Coalescer[Req, Res]{
		work:    work,
		timeout: opt.Timeout,
		base:    base,
		cancel:  cancel,
	}
}

// Do submits a request and waits for its result.
//
// If ctx is cancelled while the request is still waiting, the request is
// withdrawn. If it is cancelled while the request is running, the call
// continues in the background and its result is discarded.
func (c *Coalescer[Req, Res]) Do(ctx context.Context, req Req) (Res, error) {
	var zero Res
	cl := &call[Req, Res]{req: req, done: make(chan result[Res], 1)}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	c.seq++
	cl.seq = c.seq
	if c.pending != nil {
		c.pending.done <- result[Res]{err: ErrSuperseded}
	}
	c.pending = cl
	start := !c.running
	c.running = true
	c.mu.Unlock()

	if start {
		go c.loop()
	}

	select {
	case r := <-cl.done:
		return r.val, r.err
	case <-ctx.Done():
		c.mu.Lock()
		if c.pending == cl {
			c.pending = nil
		}
		c.mu.Unlock()
		return zero, ctx.Err()
	}
}

// Busy reports whether a call is currently running or waiting.
func (c *Coalescer[Req, Res]) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Close fails the waiting request, cancels the context of the running
// call and makes all future calls to Do return [ErrClosed].
func (c *Coalescer[Req, Res]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.done <- result[Res]{err: ErrClosed}
		c.pending = nil
	}
	c.cancel()
}

// loop runs waiting calls until there are none left.
func (c *Coalescer[Req, Res]) loop() {
	for {
		c.mu.Lock()
		cl := c.pending
		c.pending = nil
		if cl == nil {
			c.running = false
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		r := c.run(cl)

		c.mu.Lock()
		if r.err == nil && c.seq != cl.seq {
			r = result[Res]{err: ErrSuperseded}
		}
		c.mu.Unlock()
		cl.done <- r
	}
}

// run executes one call. If the call times out, run returns early and
// the work function is left to finish on its own.
func (c *Coalescer[Req, Res]) run(cl *call[Req, Res]) result[Res] {
	var ctx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(c.base, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(c.base)
	}
	defer cancel()

	done := make(chan result[Res], 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- result[Res]{err: &PanicError{Value: v, Stack: debug.Stack()}}
			}
		}()
		val, err := c.work(ctx, cl.req)
		done <- result[Res]{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		if c.base.Err() != nil {
			return result[Res]{err: ErrClosed}
		}
		return result[Res]{err: ErrTimeout}
	}
}
