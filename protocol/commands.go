package protocol

import "fmt"

// BuildFrame constructs a command frame for the given slave address, command
// code and optional data bytes.
//
// Frame structure:
//
//	[START][ADDR][CMD][DATA...][CHECKSUM][END]
//
// The checksum is the 7-bit additive checksum of ADDR, CMD and DATA.
// BuildFrame is a pure function of its inputs and always yields a valid
// frame; per-command builders wrap it with argument validation where the
// protocol constrains the data.
func BuildFrame(addr, cmd byte, data []byte) []byte {
	frame := make([]byte, 0, MinFrameSize+len(data))
	frame = append(frame, FrameStart)
	frame = append(frame, addr)
	frame = append(frame, cmd)
	frame = append(frame, data...)
	frame = append(frame, Checksum(frame[1:]))
	frame = append(frame, FrameEnd)
	return frame
}

// BuildLaserOnCmd constructs a Laser On command frame.
// The module acknowledges with a single AckOK data byte.
func BuildLaserOnCmd(addr byte) []byte {
	return BuildFrame(addr, CmdLaserOn, nil)
}

// BuildLaserOffCmd constructs a Laser Off command frame.
func BuildLaserOffCmd(addr byte) []byte {
	return BuildFrame(addr, CmdLaserOff, nil)
}

// BuildBuzzerCmd constructs a Buzzer Control command frame. The single data
// byte selects whether the module beeps when it receives a command.
func BuildBuzzerCmd(addr byte, on bool) []byte {
	data := []byte{0x00}
	if on {
		data[0] = 0x01
	}
	return BuildFrame(addr, CmdBuzzerControl, data)
}

// BuildSingleMeasureCmd constructs a Single Measure command frame.
// The response carries the distance in millimeters as ASCII digits, or an
// ERR tag when the module could not produce a reading.
func BuildSingleMeasureCmd(addr byte) []byte {
	return BuildFrame(addr, CmdSingleMeasure, nil)
}

// BuildContinuousMeasureCmd constructs a Continuous Measure command frame.
// After this command the module streams measurement frames until it receives
// Stop Measure.
func BuildContinuousMeasureCmd(addr byte) []byte {
	return BuildFrame(addr, CmdContinuousMeasure, nil)
}

// BuildStopMeasureCmd constructs a Stop Measure command frame, ending a
// continuous measurement stream.
func BuildStopMeasureCmd(addr byte) []byte {
	return BuildFrame(addr, CmdStopMeasure, nil)
}

// BuildSetSlaveAddressCmd constructs a Set Slave Address command frame.
// The new address must be in the range 1-255; address 0 is reserved.
func BuildSetSlaveAddressCmd(addr, newAddr byte) ([]byte, error) {
	if newAddr == 0 {
		return nil, fmt.Errorf("slave address must be between 1 and 255, got %d", newAddr)
	}
	return BuildFrame(addr, CmdSetSlaveAddress, []byte{newAddr}), nil
}

// BuildReadSoftwareVersionCmd constructs a Read Software Version command frame.
func BuildReadSoftwareVersionCmd(addr byte) []byte {
	return BuildFrame(addr, CmdReadSoftwareVersion, nil)
}

// BuildReadDeviceTypeCmd constructs a Read Device Type command frame.
func BuildReadDeviceTypeCmd(addr byte) []byte {
	return BuildFrame(addr, CmdReadDeviceType, nil)
}

// BuildReadSlaveAddressCmd constructs a Read Slave Address command frame.
func BuildReadSlaveAddressCmd(addr byte) []byte {
	return BuildFrame(addr, CmdReadSlaveAddress, nil)
}

// BuildReadDeviceErrorCmd constructs a Read Device Error command frame.
func BuildReadDeviceErrorCmd(addr byte) []byte {
	return BuildFrame(addr, CmdReadDeviceError, nil)
}
