// Package laser provides a high-level driver for the Egismos Laser Module 2
// rangefinder over a serial link.
//
// # Overview
//
// Each operation is one complete synchronous exchange with the module:
//   - Encode the command frame (see the protocol package)
//   - Discard stale input and write the frame
//   - Read the response frame within a bounded timeout
//   - Validate it and decode the typed result
//
// There is no pipelining and no background goroutine: an exchange moves from
// idle through sent and reading to a terminal decoded, timed-out or
// malformed state, then the driver is idle again and ready for the next
// call, whatever the outcome.
//
// # Basic Usage
//
//	d, err := laser.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//
//	if err := d.SetLaser(true); err != nil {
//	    log.Fatal(err)
//	}
//	cm, err := d.Distance()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("distance: %.1fcm\n", cm)
//
// # Bring Your Own Transport
//
// The driver does not require a real serial port. Anything satisfying Port
// works: a go.bug.st/serial port, a bridge over a network, or a mock device
// for testing:
//
//	d := laser.New(myPort, laser.WithTimeout(2*time.Second))
//
// A Port passed to New is borrowed; the caller keeps ownership and Close
// will not touch it. Power control of the laser emitter (a GPIO line on most
// carrier boards) is likewise the caller's concern.
//
// # Continuous Mode
//
// MeasureContinuously streams readings synchronously until the context is
// cancelled:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	err := d.MeasureContinuously(ctx, func(m protocol.Measurement) error {
//	    fmt.Println(m)
//	    return nil
//	})
//
// # Error Handling
//
// All failures are returned as values and none of them poison the driver:
//   - Transport errors are wrapped and surfaced directly, never retried
//   - ErrTimeout: no complete frame arrived in the configured window
//   - *protocol.FrameError: a structurally invalid frame (noise,
//     desynchronization); the driver does not resynchronize automatically
//   - *protocol.CommandFailedError: the module answered with the wrong echo,
//     a negative acknowledgement, or a garbled payload
//   - *protocol.DeviceError: the module could not take a reading (too dim,
//     too bright, target moving) — a normal measurement outcome
//
// Retry policy is deliberately left to the caller.
//
// # Concurrency
//
// The driver serializes its own callers with an internal mutex, but assumes
// exclusive use of the underlying Port. Sharing one Port between a Driver
// and other readers or writers is not supported.
package laser
