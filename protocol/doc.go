// Package protocol implements the Egismos Laser Module 2 serial communication
// protocol.
//
// This package provides functions to build command frames and parse response
// frames for the egismos series of laser rangefinder modules
// (https://www.egismos.com/laser-measuring-optoelectronics-module).
//
// # Protocol Overview
//
// Commands and responses share a single frame structure:
//
//	[START][ADDR][CMD][DATA...][CHECKSUM][END]
//
// Where:
//   - START = Frame start marker (0xAA)
//   - END = Frame end marker (0xA8)
//   - ADDR = Slave address (default 0x01)
//   - CHECKSUM = 7-bit additive checksum of ADDR, CMD and DATA
//
// A response echoes the address and command of the request it answers.
//
// # Command Builders
//
// Use the Build* functions to create command frames:
//
//	frame := protocol.BuildSingleMeasureCmd(protocol.DefaultAddress)
//	frame := protocol.BuildBuzzerCmd(protocol.DefaultAddress, false)
//	// ... etc
//
// # Response Parsers
//
// Use ParseFrame to validate a frame and extract its content:
//
//	addr, cmd, data, err := protocol.ParseFrame(frame)
//
// Then decode the data according to the command that was sent. Control
// commands answer with a one-byte acknowledgement:
//
//	err := protocol.ParseAck(data)
//
// Measure commands answer with the distance in millimeters as ASCII digits,
// or an ERR tag when the module could not take a reading:
//
//	m, err := protocol.ParseMeasurement(data)
//
// # Error Handling
//
// Structurally invalid frames decode to *FrameError, garbled or negative
// responses to *CommandFailedError, and module-reported measurement failures
// (too dim, too bright, bad reading) to *DeviceError. A *DeviceError is a
// normal outcome of a measure command: the link is healthy, the module
// simply could not measure.
package protocol
