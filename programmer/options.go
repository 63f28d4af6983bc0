package programmer

import (
	"time"

	"github.com/flashkit/go-93cxx/protocol"
)

// Config holds the programmer configuration.
type Config struct {
	// ProgressCallback is called during operations to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ReadyTimeout bounds the write-completion status polling. Zero
	// disables the bound and restores the family tools' historical
	// spin-forever behavior; a hung device then hangs the operation.
	ReadyTimeout time.Duration

	// PollInterval is the pause between status polls. Zero polls in a
	// tight loop.
	PollInterval time.Duration

	// BurstRead makes ReadImage issue a single read spanning the entire
	// array, relying on the device's auto-increment. Requires the bus
	// controller to accept a transfer as large as the array.
	BurstRead bool

	// ClockSpeed is the bus clock in Hz for all transfers.
	ClockSpeed uint32
}

// defaultConfig returns the default configuration. The ready timeout is
// generous: the family's write cycles complete in about 10 ms.
func defaultConfig() Config {
	return Config{
		ReadyTimeout: time.Second,
		ClockSpeed:   protocol.ClockSpeedHz,
	}
}

// Option is a functional option for configuring the Programmer.
type Option func(*Config)

// WithProgressCallback sets a callback function to track operation progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for programmer operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReadyTimeout bounds how long a write or erase waits for the device to
// report completion. Pass zero for the historical unbounded spin.
func WithReadyTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ReadyTimeout = timeout
	}
}

// WithPollInterval sets the pause between status polls while waiting for
// write completion. The default is a tight spin.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval >= 0 {
			c.PollInterval = interval
		}
	}
}

// WithBurstRead switches ReadImage to a single whole-array transfer instead
// of stepping word by word.
func WithBurstRead(burst bool) Option {
	return func(c *Config) {
		c.BurstRead = burst
	}
}

// WithClockSpeed overrides the default bus clock of protocol.ClockSpeedHz.
// Check the part's datasheet before raising it.
func WithClockSpeed(hz uint32) Option {
	return func(c *Config) {
		if hz > 0 {
			c.ClockSpeed = hz
		}
	}
}
