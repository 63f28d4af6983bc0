package bus

import (
	"context"
	"fmt"

	"periph.io/x/conn/v3/spi"
)

// PeriphBus adapts a periph.io SPI connection to the Bus interface. Legs map
// to spi.Packet entries with KeepCS set on all but the last, so the whole
// transaction runs under one chip-select assertion.
//
// The port must be connected in mode 0. The family additionally wants the
// select line active-high, which spidev expresses as SPI_CS_HIGH; where the
// host driver cannot set it, wire the select through an inverter or drive it
// from a GPIO. Clock speed is fixed when the port is connected, so
// per-transfer Speed values are ignored here.
type PeriphBus struct {
	conn spi.Conn
}

// NewPeriph wraps an already-connected periph.io SPI connection.
//
//	port, err := spireg.Open("/dev/spidev1.0")
//	conn, err := port.Connect(100*physic.KiloHertz, spi.Mode0, 8)
//	b := bus.NewPeriph(conn)
func NewPeriph(conn spi.Conn) *PeriphBus {
	return &PeriphBus{conn: conn}
}

// Transact implements Bus.
func (b *PeriphBus) Transact(ctx context.Context, tr ...Transfer) error {
	if len(tr) == 0 {
		return fmt.Errorf("empty transaction")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	packets := make([]spi.Packet, len(tr))
	for i, t := range tr {
		if t.Tx != nil && t.Rx != nil && len(t.Tx) != len(t.Rx) {
			return fmt.Errorf("leg %d: tx/rx length mismatch (%d != %d)", i, len(t.Tx), len(t.Rx))
		}
		packets[i] = spi.Packet{
			W:           t.Tx,
			R:           t.Rx,
			BitsPerWord: t.BitsPerWord,
			KeepCS:      i < len(tr)-1,
		}
	}

	return b.conn.TxPackets(packets)
}
