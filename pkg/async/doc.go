// Package async provides generic helpers for running computations off the
// calling goroutine and collecting their results later.
//
// A Future is the eventual result of an asynchronous operation. Async starts a
// function in its own goroutine; Submit runs it on a bounded Pool so that
// CPU-heavy work such as password key derivation is limited to a fixed number
// of concurrent workers.
//
// # Usage
//
//	pool := async.NewPool(4)
//
//	future := async.Submit(ctx, pool, func(ctx context.Context) (string, error) {
//	    return expensive(), nil
//	})
//
//	// AwaitContext stops waiting when the request goes away.
//	res, err := future.AwaitContext(ctx)
//
// # Error Handling
//
// Futures return the error produced by the callback, ctx.Err() when the
// context ends first, or ErrTimeout from AwaitWithTimeout.
package async
