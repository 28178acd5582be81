package ikc

import "errors"

// ErrCallbackPanicked indicates the user-supplied Progress callback
// panicked. Run recovers the panic, aborts the in-flight iteration, and
// returns this sentinel (wrapped with the recovered value via %w-style
// formatting) instead of a partial Result.
var ErrCallbackPanicked = errors.New("ikc: progress callback panicked")
