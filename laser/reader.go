package laser

import (
	"fmt"
	"time"

	"github.com/furbrain/go-egismos/protocol"
)

// readFrame accumulates one response frame from the port: it scans for the
// start marker, discarding stray bytes left over from an abandoned exchange
// or line noise, then collects bytes until the end marker arrives.
//
// Every read respects the remaining budget before deadline, so readFrame
// never blocks past the deadline by more than one transport call. On expiry
// it fails with ErrTimeout and the partial bytes are discarded.
func (d *Driver) readFrame(deadline time.Time) ([]byte, error) {
	for {
		b, ok, err := d.readByte(deadline)
		if err != nil {
			return nil, fmt.Errorf("waiting for frame start: %w", err)
		}
		if ok && b == protocol.FrameStart {
			break
		}
	}

	frame := make([]byte, 1, protocol.MinFrameSize+8)
	frame[0] = protocol.FrameStart
	// The checksum byte is 7-bit so it cannot alias the end marker; the
	// minimum-size guard keeps an address or command byte that happens to
	// equal the end marker from terminating the frame early.
	for len(frame) < protocol.MinFrameSize || frame[len(frame)-1] != protocol.FrameEnd {
		b, ok, err := d.readByte(deadline)
		if err != nil {
			return nil, fmt.Errorf("waiting for frame end: %w", err)
		}
		if ok {
			frame = append(frame, b)
		}
	}

	d.logDebug("frame received", "frame", fmt.Sprintf("% 02X", frame))
	return frame, nil
}

// readByte reads a single byte within the remaining time budget. ok is false
// when the read window lapsed with no data, which is not an error: the
// caller loops and the budget check fails once the deadline passes.
func (d *Driver) readByte(deadline time.Time) (b byte, ok bool, err error) {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, false, ErrTimeout
	}

	if err := d.port.SetReadTimeout(remaining); err != nil {
		return 0, false, fmt.Errorf("set read timeout: %w", err)
	}

	var one [1]byte
	n, err := d.port.Read(one[:])
	if err != nil {
		return 0, false, fmt.Errorf("read: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return one[0], true, nil
}
