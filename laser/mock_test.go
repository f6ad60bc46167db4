package laser

import (
	"time"

	"github.com/furbrain/go-egismos/protocol"
)

// mockPort implements Port for testing. Reads are scripted as a sequence of
// chunks, one per Read call; an empty chunk models a read window lapsing
// with no data, and an exhausted script models a silent line by sleeping
// out the configured read timeout, like a real serial port would.
type mockPort struct {
	reads       [][]byte
	readIdx     int
	written     []byte
	readErr     error
	writeErr    error
	readTimeout time.Duration
	resets      int
}

func (m *mockPort) Read(p []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}

	for m.readIdx < len(m.reads) {
		chunk := m.reads[m.readIdx]
		if len(chunk) == 0 {
			m.readIdx++
			return 0, nil
		}
		n := copy(p, chunk)
		if n < len(chunk) {
			m.reads[m.readIdx] = chunk[n:]
		} else {
			m.readIdx++
		}
		return n, nil
	}

	time.Sleep(m.readTimeout)
	return 0, nil
}

func (m *mockPort) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.written = append(m.written, p...)
	return len(p), nil
}

func (m *mockPort) SetReadTimeout(t time.Duration) error {
	m.readTimeout = t
	return nil
}

func (m *mockPort) ResetInputBuffer() error {
	m.resets++
	return nil
}

// script appends response frames to the mock's read script, one frame per
// chunk.
func (m *mockPort) script(frames ...[]byte) {
	m.reads = append(m.reads, frames...)
}

// ackFrame builds the acknowledgement response the module sends for a
// control command.
func ackFrame(addr, cmd byte) []byte {
	return protocol.BuildFrame(addr, cmd, []byte{protocol.AckOK})
}

// measureFrame builds a single-measure response carrying the given payload.
func measureFrame(addr byte, payload string) []byte {
	return protocol.BuildFrame(addr, protocol.CmdSingleMeasure, []byte(payload))
}

// streamFrame builds a continuous-measure response carrying the given payload.
func streamFrame(addr byte, payload string) []byte {
	return protocol.BuildFrame(addr, protocol.CmdContinuousMeasure, []byte(payload))
}
