package protocol

import "fmt"

// FrameFault identifies what made a response frame structurally invalid.
type FrameFault int

// Frame fault kinds, in the order they are checked.
const (
	// FaultLength indicates the frame is shorter than MinFrameSize
	FaultLength FrameFault = iota

	// FaultStart indicates the frame does not begin with FrameStart
	FaultStart

	// FaultEnd indicates the frame does not terminate with FrameEnd
	FaultEnd

	// FaultChecksum indicates the trailing checksum byte does not match the
	// checksum recomputed over the frame content
	FaultChecksum
)

// FrameError reports a structurally invalid response frame: wrong length,
// missing start or end marker, or a checksum mismatch. It usually indicates
// line noise or a desynchronized byte stream. The driver surfaces it to the
// caller rather than hunting for the next frame start, since resynchronizing
// blind can mask real faults.
type FrameError struct {
	// Fault is the kind of structural failure
	Fault FrameFault

	// Length is the observed frame length (FaultLength only)
	Length int

	// Got is the offending byte value
	Got byte

	// Want is the expected byte value
	Want byte
}

func (e *FrameError) Error() string {
	switch e.Fault {
	case FaultLength:
		return fmt.Sprintf("frame too short: got %d bytes, minimum is %d", e.Length, MinFrameSize)
	case FaultStart:
		return fmt.Sprintf("invalid frame start: got 0x%02X, expected 0x%02X", e.Got, e.Want)
	case FaultEnd:
		return fmt.Sprintf("invalid frame end: got 0x%02X, expected 0x%02X", e.Got, e.Want)
	case FaultChecksum:
		return fmt.Sprintf("checksum mismatch: got 0x%02X, expected 0x%02X", e.Got, e.Want)
	default:
		return fmt.Sprintf("invalid frame (fault %d)", e.Fault)
	}
}

// IsFrameError returns true if the error is a FrameError.
func IsFrameError(err error) bool {
	_, ok := err.(*FrameError)
	return ok
}

// DeviceCode identifies a measurement failure reported by the module itself.
type DeviceCode int

// Device-reported measurement failures and the ASCII tags that carry them.
const (
	// CodeTooDim (ERR255): the laser return was too dim to interpret
	CodeTooDim DeviceCode = iota

	// CodeTooBright (ERR256): the laser return was too bright for an
	// accurate reading
	CodeTooBright

	// CodeBadReading (ERR204): the measurement failed, often because the
	// target was moving
	CodeBadReading
)

// DeviceError is a measurement failure reported by the module in place of a
// distance. It is a normal outcome of a measure command, not a protocol or
// transport fault: the link and the driver are healthy, the module simply
// could not produce a reading.
type DeviceError struct {
	// Code is the device-reported failure
	Code DeviceCode
}

func (e *DeviceError) Error() string {
	switch e.Code {
	case CodeTooDim:
		return "laser spot too dim: use reflective tape or a shorter distance"
	case CodeTooBright:
		return "laser spot too bright: too much ambient light, or target too close"
	case CodeBadReading:
		return "unable to measure: is the target moving?"
	default:
		return fmt.Sprintf("device reported measurement failure (code %d)", e.Code)
	}
}

// IsDeviceError returns true if the error is a module-reported measurement
// failure rather than a protocol or transport fault.
func IsDeviceError(err error) bool {
	_, ok := err.(*DeviceError)
	return ok
}

// CommandFailedError indicates the module answered, but not with what the
// driver expected: a missing or negative acknowledgement, an echo for a
// different command or address, or a garbled measurement payload.
type CommandFailedError struct {
	// Reason describes what was wrong with the response
	Reason string
}

func (e *CommandFailedError) Error() string {
	return "command failed: " + e.Reason
}
