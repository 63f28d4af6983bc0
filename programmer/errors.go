package programmer

import (
	"fmt"
	"time"
)

// TransferError indicates that an underlying bus transfer failed. It carries
// the operation that issued the transfer and the transport's error.
type TransferError struct {
	// Op is the operation that failed ("read", "write", "write-enable"...)
	Op string

	// Err is the underlying bus error
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("SPI transaction failed (%s): %v", e.Op, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// ImageSizeError indicates that a source image's length does not equal the
// device's configured size.
type ImageSizeError struct {
	Got  int
	Want int
}

func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("image size %d does not match EEPROM size %d", e.Got, e.Want)
}

// TimeoutError indicates that the device did not report write completion
// within the configured ready timeout.
type TimeoutError struct {
	// Op is the operation that was waiting ("write", "erase")
	Op string

	// Waited is how long the status was polled before giving up
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("device did not report ready within %s (%s)", e.Waited, e.Op)
}
