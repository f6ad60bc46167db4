package laser

import (
	"time"

	"github.com/furbrain/go-egismos/protocol"
)

// DefaultTimeout is the default window for one complete command/response
// exchange. The module can take several seconds to return a reading at long
// range.
const DefaultTimeout = 5 * time.Second

// Config holds the driver configuration.
type Config struct {
	// Address is the slave address to talk to
	Address byte

	// Timeout is the window for one complete exchange: transmit plus
	// reading back the full response frame
	Timeout time.Duration

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Address: protocol.DefaultAddress,
		Timeout: DefaultTimeout,
	}
}

// Option is a functional option for configuring the Driver.
type Option func(*Config)

// WithAddress sets the slave address to talk to. Only needed when several
// modules share one bus; the factory address is protocol.DefaultAddress.
//
// Example:
//
//	d := laser.New(port, laser.WithAddress(0x03))
func WithAddress(addr byte) Option {
	return func(c *Config) {
		if addr != 0 {
			c.Address = addr
		}
	}
}

// WithTimeout sets the window for one complete command/response exchange.
//
// Example:
//
//	d := laser.New(port, laser.WithTimeout(2*time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	d := laser.New(port, laser.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
