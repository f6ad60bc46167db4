package laser

import (
	"io"
	"time"
)

// Port is the byte stream connecting the driver to the laser module. It is
// the subset of go.bug.st/serial.Port the driver needs, so a real serial
// port satisfies it directly; tests and other transports only have to
// implement these three methods.
//
// The driver borrows the Port: the caller owns its lifetime unless the
// Driver was constructed with Open, and is responsible for serializing
// access if the same Port is shared with anything else.
type Port interface {
	io.ReadWriter

	// SetReadTimeout bounds a single Read call. A Read that sees no data
	// within the window must return (0, nil), which the driver treats as
	// "still waiting" rather than an error.
	SetReadTimeout(time.Duration) error
}

// inputResetter is implemented by ports that can discard buffered input.
// go.bug.st/serial.Port implements it; the driver uses it to drop stale
// bytes before each exchange, matching the module's request/response cadence.
type inputResetter interface {
	ResetInputBuffer() error
}
