package laser

import (
	"fmt"

	"go.bug.st/serial"
)

// BaudRate is the fixed baud rate of the Egismos laser module UART.
const BaudRate = 9600

// Open opens the serial port at the given path with the module's fixed line
// settings (9600 8N1) and returns a Driver using it. A Driver created by
// Open owns the port: Close releases it.
//
// Example:
//
//	d, err := laser.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
func Open(path string, opts ...Option) (*Driver, error) {
	mode := &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}

	d := New(port, opts...)
	d.ownsPort = true
	return d, nil
}
