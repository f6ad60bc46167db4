package protocol

// Frame structure constants per the Egismos Laser Module 2 serial protocol.
const (
	// FrameStart is the frame start marker (0xAA)
	FrameStart = 0xAA

	// FrameEnd is the frame end marker (0xA8)
	FrameEnd = 0xA8

	// MinFrameSize is the minimum frame size in bytes:
	// START(1) + ADDR(1) + CMD(1) + CHECKSUM(1) + END(1)
	MinFrameSize = 5

	// ChecksumMask truncates the additive checksum to 7 bits. A checksum can
	// therefore never equal the end marker, which keeps end-of-frame
	// scanning unambiguous.
	ChecksumMask = 0x7F
)

// DefaultAddress is the factory slave address of the module. It only needs to
// be changed when several modules share one bus.
const DefaultAddress = 0x01

// Command codes per the Egismos Laser Module 2 datasheet.
const (
	// CmdReadSoftwareVersion reads the module firmware version
	CmdReadSoftwareVersion = 0x01

	// CmdReadDeviceType reads the device type identifier
	CmdReadDeviceType = 0x02

	// CmdReadSlaveAddress reads the configured slave address
	CmdReadSlaveAddress = 0x04

	// CmdReadDeviceError reads the device error register
	CmdReadDeviceError = 0x08

	// CmdSetSlaveAddress assigns a new slave address (1-255)
	CmdSetSlaveAddress = 0x41

	// CmdLaserOn powers the laser emitter on
	CmdLaserOn = 0x42

	// CmdLaserOff powers the laser emitter off
	CmdLaserOff = 0x43

	// CmdSingleMeasure requests one distance measurement
	CmdSingleMeasure = 0x44

	// CmdContinuousMeasure starts streaming distance measurements
	CmdContinuousMeasure = 0x45

	// CmdStopMeasure stops a continuous measurement stream
	CmdStopMeasure = 0x46

	// CmdBuzzerControl enables or disables the command beep (data 0x01/0x00)
	CmdBuzzerControl = 0x47
)

// AckOK is the single data byte carried by a successful acknowledgement
// response to a control command.
const AckOK = 0x01

// Measurement error tags. The module reports these as the ASCII payload of a
// measurement response in place of a distance.
const (
	errTagTooDim     = "ERR255"
	errTagTooBright  = "ERR256"
	errTagBadReading = "ERR204"
)
