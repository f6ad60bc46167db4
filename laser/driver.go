package laser

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/furbrain/go-egismos/protocol"
)

// Driver drives one Egismos laser rangefinder module over a serial byte
// stream. Every public operation is a complete synchronous round trip: build
// the command frame, write it, read back the response within the configured
// timeout, validate and decode it.
//
// The driver holds no hardware state beyond the transport handle, the slave
// address, and write-only mirrors of the last laser/buzzer commands sent. It
// assumes exclusive access to the module; an internal mutex serializes
// callers that share one Driver, but sharing the underlying Port with
// anything else is the caller's problem.
type Driver struct {
	port     Port
	cfg      Config
	ownsPort bool

	mu       sync.Mutex
	addr     byte
	laserOn  bool
	buzzerOn bool
}

// New creates a Driver talking over the given port. The port is borrowed:
// the caller owns its lifetime and Close will not touch it. Use Open to let
// the driver manage a real serial port itself.
//
// Example:
//
//	port, _ := serial.Open("/dev/ttyUSB0", mode)
//	d := laser.New(port,
//	    laser.WithTimeout(2*time.Second),
//	    laser.WithAddress(0x03),
//	)
func New(port Port, opts ...Option) *Driver {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver{
		port: port,
		cfg:  cfg,
		addr: cfg.Address,
	}
}

// Close releases the serial port if the Driver opened it itself (see Open).
// For a borrowed Port, Close is a no-op.
func (d *Driver) Close() error {
	if !d.ownsPort {
		return nil
	}
	if c, ok := d.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Address returns the slave address the driver is currently talking to.
func (d *Driver) Address() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addr
}

// LaserEnabled reports whether the last laser command sent was "on". It
// mirrors commands the module acknowledged and is not read back from
// hardware.
func (d *Driver) LaserEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.laserOn
}

// BuzzerEnabled reports whether the last buzzer command sent was "on". Like
// LaserEnabled it is a write-only mirror, not hardware state.
func (d *Driver) BuzzerEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buzzerOn
}

// SetLaser turns the laser pointer on or off.
func (d *Driver) SetLaser(on bool) error {
	cmd := byte(protocol.CmdLaserOff)
	build := protocol.BuildLaserOffCmd
	if on {
		cmd = protocol.CmdLaserOn
		build = protocol.BuildLaserOnCmd
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.commandLocked(cmd, build(d.addr)); err != nil {
		return fmt.Errorf("set laser: %w", err)
	}
	d.laserOn = on
	return nil
}

// SetBuzzer turns the command beep on or off.
func (d *Driver) SetBuzzer(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.commandLocked(protocol.CmdBuzzerControl, protocol.BuildBuzzerCmd(d.addr, on)); err != nil {
		return fmt.Errorf("set buzzer: %w", err)
	}
	d.buzzerOn = on
	return nil
}

// Measure takes a single distance reading.
//
// A *protocol.DeviceError result (too dim, too bright, bad reading) is a
// normal outcome reported by the module, not a link fault; the driver stays
// usable either way.
func (d *Driver) Measure() (protocol.Measurement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := d.exchangeLocked(protocol.CmdSingleMeasure, protocol.BuildSingleMeasureCmd(d.addr))
	if err != nil {
		return protocol.Measurement{}, fmt.Errorf("measure: %w", err)
	}

	m, err := protocol.ParseMeasurement(data)
	if err != nil {
		return protocol.Measurement{}, fmt.Errorf("measure: %w", err)
	}
	return m, nil
}

// Distance takes a single reading and returns it in centimeters.
func (d *Driver) Distance() (float64, error) {
	m, err := d.Measure()
	if err != nil {
		return 0, err
	}
	return m.Centimeters(), nil
}

// StopMeasuring stops a continuous measurement stream. It is only needed
// when a stream was started outside MeasureContinuously, which stops the
// stream itself before returning.
func (d *Driver) StopMeasuring() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.commandLocked(protocol.CmdStopMeasure, protocol.BuildStopMeasureCmd(d.addr)); err != nil {
		return fmt.Errorf("stop measuring: %w", err)
	}
	return nil
}

// SetSlaveAddress assigns a new slave address (1-255) to the module and,
// once acknowledged, uses it for all subsequent commands.
func (d *Driver) SetSlaveAddress(addr byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	frame, err := protocol.BuildSetSlaveAddressCmd(d.addr, addr)
	if err != nil {
		return fmt.Errorf("set slave address: %w", err)
	}
	data, err := d.exchangeLocked(protocol.CmdSetSlaveAddress, frame)
	if err != nil {
		return fmt.Errorf("set slave address: %w", err)
	}
	if err := protocol.ParseAck(data); err != nil {
		return fmt.Errorf("set slave address: %w", err)
	}

	d.addr = addr
	return nil
}

// SoftwareVersion reads the module firmware version string.
func (d *Driver) SoftwareVersion() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := d.exchangeLocked(protocol.CmdReadSoftwareVersion, protocol.BuildReadSoftwareVersionCmd(d.addr))
	if err != nil {
		return "", fmt.Errorf("read software version: %w", err)
	}
	return string(data), nil
}

// DeviceType reads the device type identifier byte.
func (d *Driver) DeviceType() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := d.exchangeLocked(protocol.CmdReadDeviceType, protocol.BuildReadDeviceTypeCmd(d.addr))
	if err != nil {
		return 0, fmt.Errorf("read device type: %w", err)
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("read device type: %w", &protocol.CommandFailedError{Reason: "empty response"})
	}
	return data[0], nil
}

// SlaveAddress reads the slave address configured in the module. Unlike
// Address it asks the hardware rather than reporting driver state.
func (d *Driver) SlaveAddress() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := d.exchangeLocked(protocol.CmdReadSlaveAddress, protocol.BuildReadSlaveAddressCmd(d.addr))
	if err != nil {
		return 0, fmt.Errorf("read slave address: %w", err)
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("read slave address: %w", &protocol.CommandFailedError{Reason: "empty response"})
	}
	return data[0], nil
}

// DeviceError reads the module's error register.
func (d *Driver) DeviceError() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := d.exchangeLocked(protocol.CmdReadDeviceError, protocol.BuildReadDeviceErrorCmd(d.addr))
	if err != nil {
		return 0, fmt.Errorf("read device error: %w", err)
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("read device error: %w", &protocol.CommandFailedError{Reason: "empty response"})
	}
	return data[0], nil
}

// MeasureContinuously starts the module's continuous measurement mode and
// synchronously delivers each reading to fn until ctx is done or fn returns
// an error. The stream is stopped before MeasureContinuously returns.
//
// Readings the module could not take (*protocol.DeviceError frames) are
// logged and skipped; the stream keeps running. Cancellation is observed
// between frames, so a cancel during a quiet line can take up to one
// exchange timeout to be honored.
func (d *Driver) MeasureContinuously(ctx context.Context, fn MeasurementFunc) error {
	if fn == nil {
		return fmt.Errorf("measurement func cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.writeFrame(protocol.BuildContinuousMeasureCmd(d.addr)); err != nil {
		return fmt.Errorf("start continuous measure: %w", err)
	}

	streamErr := d.streamLocked(ctx, fn)

	if err := d.stopStreamLocked(); err != nil {
		if streamErr == nil {
			streamErr = err
		} else {
			d.logError("failed to stop measurement stream", "error", err)
		}
	}
	return streamErr
}

// streamLocked reads measurement frames until ctx is done or fn rejects a
// reading. It returns ctx.Err() on cancellation.
func (d *Driver) streamLocked(ctx context.Context, fn MeasurementFunc) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := d.readFrame(time.Now().Add(d.cfg.Timeout))
		if err != nil {
			return err
		}
		addr, cmd, data, err := protocol.ParseFrame(frame)
		if err != nil {
			return err
		}
		if addr != d.addr || cmd != protocol.CmdContinuousMeasure {
			return &protocol.CommandFailedError{
				Reason: fmt.Sprintf("unexpected stream frame: address 0x%02X command 0x%02X", addr, cmd),
			}
		}

		m, err := protocol.ParseMeasurement(data)
		if err != nil {
			if protocol.IsDeviceError(err) {
				d.logDebug("reading skipped", "cause", err.Error())
				continue
			}
			return err
		}

		if err := fn(m); err != nil {
			return err
		}
	}
}

// stopStreamLocked sends Stop Measure and waits for its acknowledgement,
// dropping any measurement frames still in flight.
func (d *Driver) stopStreamLocked() error {
	if err := d.writeFrame(protocol.BuildStopMeasureCmd(d.addr)); err != nil {
		return fmt.Errorf("stop measuring: %w", err)
	}

	deadline := time.Now().Add(d.cfg.Timeout)
	for {
		frame, err := d.readFrame(deadline)
		if err != nil {
			return fmt.Errorf("stop measuring: %w", err)
		}
		addr, cmd, data, err := protocol.ParseFrame(frame)
		if err != nil {
			return fmt.Errorf("stop measuring: %w", err)
		}
		if addr == d.addr && cmd == protocol.CmdStopMeasure {
			if err := protocol.ParseAck(data); err != nil {
				return fmt.Errorf("stop measuring: %w", err)
			}
			return nil
		}
		// a measurement frame that was already on the wire; drop it
	}
}

// commandLocked performs one acknowledged control exchange.
func (d *Driver) commandLocked(cmd byte, frame []byte) error {
	data, err := d.exchangeLocked(cmd, frame)
	if err != nil {
		return err
	}
	return protocol.ParseAck(data)
}

// exchangeLocked performs one write/read round trip and returns the response
// data. The response must echo the address and command that were sent.
func (d *Driver) exchangeLocked(cmd byte, frame []byte) ([]byte, error) {
	if err := d.writeFrame(frame); err != nil {
		return nil, err
	}

	resp, err := d.readFrame(time.Now().Add(d.cfg.Timeout))
	if err != nil {
		return nil, err
	}

	addr, gotCmd, data, err := protocol.ParseFrame(resp)
	if err != nil {
		return nil, err
	}
	if gotCmd != cmd {
		return nil, &protocol.CommandFailedError{
			Reason: fmt.Sprintf("response command 0x%02X does not match sent command 0x%02X", gotCmd, cmd),
		}
	}
	if addr != d.addr {
		return nil, &protocol.CommandFailedError{
			Reason: fmt.Sprintf("response address 0x%02X does not match sent address 0x%02X", addr, d.addr),
		}
	}
	return data, nil
}

// writeFrame discards any stale buffered input, then transmits one frame.
func (d *Driver) writeFrame(frame []byte) error {
	if r, ok := d.port.(inputResetter); ok {
		if err := r.ResetInputBuffer(); err != nil {
			return fmt.Errorf("reset input buffer: %w", err)
		}
	}

	d.logDebug("frame sent", "frame", fmt.Sprintf("% 02X", frame))
	if _, err := d.port.Write(frame); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (d *Driver) logDebug(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (d *Driver) logError(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Error(msg, keysAndValues...)
	}
}
