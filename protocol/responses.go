package protocol

// ParseFrame validates a response frame and extracts its content.
//
// Response frame structure:
//
//	[START][ADDR][CMD][DATA...][CHECKSUM][END]
//
// Validation order: overall length, start marker, end marker, checksum.
// Each failure is reported as a *FrameError identifying the fault. The
// returned data slice aliases the input frame.
func ParseFrame(frame []byte) (addr, cmd byte, data []byte, err error) {
	if len(frame) < MinFrameSize {
		return 0, 0, nil, &FrameError{Fault: FaultLength, Length: len(frame)}
	}

	if frame[0] != FrameStart {
		return 0, 0, nil, &FrameError{Fault: FaultStart, Got: frame[0], Want: FrameStart}
	}

	last := len(frame) - 1
	if frame[last] != FrameEnd {
		return 0, 0, nil, &FrameError{Fault: FaultEnd, Got: frame[last], Want: FrameEnd}
	}

	// Checksum covers everything between the start marker and the checksum
	// byte itself.
	want := Checksum(frame[1 : last-1])
	if frame[last-1] != want {
		return 0, 0, nil, &FrameError{Fault: FaultChecksum, Got: frame[last-1], Want: want}
	}

	return frame[1], frame[2], frame[3 : last-1], nil
}

// ParseAck checks the data of a control command response for a positive
// acknowledgement. Control commands (laser, buzzer, address, stop) answer
// with a single AckOK byte; anything else means the module rejected or did
// not recognise the command.
func ParseAck(data []byte) error {
	if len(data) == 0 || data[0] != AckOK {
		return &CommandFailedError{Reason: "command was not acknowledged"}
	}
	return nil
}
