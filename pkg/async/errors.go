package async

import "errors"

// ErrTimeout is returned by Future.AwaitWithTimeout when the result is not
// ready in time. The underlying work keeps running.
var ErrTimeout = errors.New("async.timeout")
