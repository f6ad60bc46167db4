package laser

import "github.com/furbrain/go-egismos/protocol"

// MeasurementFunc receives each distance reading taken in continuous mode.
// Returning a non-nil error stops the stream; the error is returned to the
// MeasureContinuously caller. Implementations should return quickly: the
// stream is read synchronously and a slow callback backs up the serial input.
//
// Example:
//
//	err := d.MeasureContinuously(ctx, func(m protocol.Measurement) error {
//	    fmt.Printf("%.1fcm\n", m.Centimeters())
//	    return nil
//	})
type MeasurementFunc func(protocol.Measurement) error

// Logger is an optional logging interface that can be provided to the driver.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	d := laser.New(port, laser.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
