// Package bus defines the synchronous serial transfer capability the
// programmer consumes, and adapters to concrete SPI transports.
//
// The 93Cxx family needs two things most SPI peripherals don't: chained
// transfers within one assertion of the device-select line (a command header
// leg followed by a data leg), and mode 0 with an active-high select. The
// Bus interface captures the first; the second is a bus-master configuration
// concern the adapter documents but cannot always express.
package bus

import "context"

// Transfer describes one leg of a chained bus transaction. Either buffer may
// be nil for transmit-only or receive-only legs; when both are set they must
// be the same length.
type Transfer struct {
	// Tx is the transmit buffer, nil for receive-only legs.
	Tx []byte

	// Rx is the receive buffer, nil for transmit-only legs.
	Rx []byte

	// BitsPerWord is the transfer unit size. Zero means 8.
	BitsPerWord uint8

	// Speed is the clock rate in Hz for this leg. Zero means the bus
	// default. Transports that fix the clock at connect time may treat
	// this as advisory.
	Speed uint32
}

// Len returns the leg length in bytes.
func (t Transfer) Len() int {
	if t.Tx != nil {
		return len(t.Tx)
	}
	return len(t.Rx)
}

// Bus performs chained full-duplex transfers over a synchronous serial bus.
//
// All legs of one Transact call execute within a single assertion of the
// device-select signal; the select deasserts only after the last leg.
// Implementations must support at least two chained legs.
type Bus interface {
	Transact(ctx context.Context, tr ...Transfer) error
}
