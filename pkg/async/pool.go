package async

import (
	"context"
	"runtime"
)

// Pool bounds the number of functions running at the same time.
// It is meant for CPU-heavy work (key derivation, compression) that must not
// monopolise the scheduler while unrelated requests are waiting for I/O.
type Pool struct {
	slots chan struct{}
}

// NewPool creates a pool with the given number of workers.
// A non-positive size falls back to runtime.NumCPU().
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Size returns the maximum number of concurrently running functions.
func (p *Pool) Size() int {
	return cap(p.slots)
}

// Submit schedules fn on the pool and returns a Future for its result.
// If ctx is done before a worker slot frees up, fn never runs and the Future
// completes with ctx.Err(). Once started, fn runs to completion.
func Submit[U any](ctx context.Context, p *Pool, fn func(context.Context) (U, error)) *Future[U] {
	if p == nil {
		panic("async: nil pool")
	}

	f := newFuture[U]()

	go func() {
		if err := ctx.Err(); err != nil {
			var zero U
			f.complete(zero, err)
			return
		}
		select {
		case p.slots <- struct{}{}:
		case <-ctx.Done():
			var zero U
			f.complete(zero, ctx.Err())
			return
		}
		defer func() { <-p.slots }()

		res, err := fn(ctx)
		f.complete(res, err)
	}()

	return f
}
