// Package async provides a generic Future for results computed in a
// separate goroutine.
//
// Go starts a task and returns immediately; the caller collects the result
// with Await, AwaitContext or AwaitWithTimeout, or polls with IsComplete:
//
//	f := async.Go(ctx, func(ctx context.Context) (schema.Result, error) {
//	    return schema.ValidateAsync(ctx, input, node), nil
//	})
//
//	// do other work
//	res, err := f.Await()
//
// # Error handling
//
// A Future completes with the error returned by the task, with ctx.Err()
// when the context was already cancelled at start, or with an error
// wrapping ErrPanic when the task panicked. AwaitWithTimeout returns
// ErrTimeout when the deadline passes first; the task is not cancelled.
package async
