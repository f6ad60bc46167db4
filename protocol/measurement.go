package protocol

import (
	"fmt"
	"strconv"
)

// Measurement is a validated distance reading from the module. It is created
// only by a successful ParseMeasurement and never mutated afterwards.
type Measurement struct {
	millimeters int
}

// Millimeters returns the measured distance in millimeters, the module's
// native unit.
func (m Measurement) Millimeters() int {
	return m.millimeters
}

// Centimeters returns the measured distance in centimeters.
func (m Measurement) Centimeters() float64 {
	return float64(m.millimeters) / 10.0
}

// Meters returns the measured distance in meters.
func (m Measurement) Meters() float64 {
	return float64(m.millimeters) / 1000.0
}

func (m Measurement) String() string {
	return fmt.Sprintf("%dmm", m.millimeters)
}

// ParseMeasurement decodes the data of a measurement response.
//
// The module reports the distance in millimeters as ASCII decimal digits
// (e.g. "1705"), or one of the ERR tags when it could not produce a reading.
// ERR tags decode to a *DeviceError: a normal outcome of a measure command,
// distinct from frame and transport faults. Any other non-numeric payload is
// a *CommandFailedError.
func ParseMeasurement(data []byte) (Measurement, error) {
	switch string(data) {
	case errTagTooDim:
		return Measurement{}, &DeviceError{Code: CodeTooDim}
	case errTagTooBright:
		return Measurement{}, &DeviceError{Code: CodeTooBright}
	case errTagBadReading:
		return Measurement{}, &DeviceError{Code: CodeBadReading}
	}

	mm, err := strconv.Atoi(string(data))
	if err != nil || mm < 0 {
		return Measurement{}, &CommandFailedError{
			Reason: fmt.Sprintf("unexpected measurement payload %q", data),
		}
	}

	return Measurement{millimeters: mm}, nil
}
