package laser

import "errors"

// ErrTimeout indicates no complete response frame arrived within the
// configured exchange window. Any partially received bytes are discarded.
// The operation may simply be retried; the driver remains usable.
var ErrTimeout = errors.New("timed out waiting for response")
