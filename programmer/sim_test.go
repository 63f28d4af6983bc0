package programmer

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/flashkit/go-93cxx/bus"
	"github.com/flashkit/go-93cxx/device"
	"github.com/flashkit/go-93cxx/protocol"
)

// simDevice models a 93Cxx part behind the bus interface. It decodes every
// command header from its wire bytes, so a test that round-trips data
// through it exercises the real encoding, not an echo.
type simDevice struct {
	addrBits int
	wordSize int
	mem      []byte

	writeEnabled bool

	// busyPolls is how many busy statuses the device reports after each
	// accepted program or erase before turning ready.
	busyPolls   int
	pendingBusy int
	alwaysBusy  bool

	// failAt makes the nth Transact call (1-based) and every later one
	// fail; 0 disables injection.
	failAt int

	transacts     int
	statusPolls   int
	writesIgnored int
}

func newSimDevice(sel *device.Selection) *simDevice {
	d := &simDevice{
		addrBits: sel.AddrBits(),
		wordSize: sel.WordSize(),
		mem:      make([]byte, sel.Size()),
	}
	// Fresh parts ship erased.
	for i := range d.mem {
		d.mem[i] = 0xFF
	}
	return d
}

func (d *simDevice) Transact(ctx context.Context, tr ...bus.Transfer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.transacts++
	if d.failAt > 0 && d.transacts >= d.failAt {
		return errors.New("bus gone")
	}
	if len(tr) == 0 {
		return errors.New("sim: empty transaction")
	}

	// A headerless 1-byte receive is the status poll.
	if len(tr) == 1 && tr[0].Tx == nil && len(tr[0].Rx) == 1 {
		d.statusPolls++
		if d.alwaysBusy || d.pendingBusy > 0 {
			if d.pendingBusy > 0 {
				d.pendingBusy--
			}
			tr[0].Rx[0] = 0x00
		} else {
			tr[0].Rx[0] = protocol.StatusReady
		}
		return nil
	}

	op, field, fieldBits, err := d.decodeHeader(tr[0].Tx)
	if err != nil {
		return err
	}

	switch op {
	case protocol.OpcodeRead:
		if want := d.addrBits + protocol.ReadDummyBits; fieldBits != want {
			return fmt.Errorf("sim: read field is %d bits, device expects %d", fieldBits, want)
		}
		if len(tr) != 2 || tr[1].Rx == nil {
			return errors.New("sim: read needs a chained receive leg")
		}
		start := int(field) * d.wordSize
		for i := range tr[1].Rx {
			tr[1].Rx[i] = d.mem[(start+i)%len(d.mem)] // auto-increment, wraps
		}

	case protocol.OpcodeWrite:
		if fieldBits != d.addrBits {
			return fmt.Errorf("sim: write field is %d bits, device expects %d", fieldBits, d.addrBits)
		}
		if len(tr) != 2 || tr[1].Tx == nil {
			return errors.New("sim: write needs a chained transmit leg")
		}
		if !d.writeEnabled {
			// A locked part ignores program commands silently.
			d.writesIgnored++
			return nil
		}
		start := int(field) * d.wordSize
		copy(d.mem[start:], tr[1].Tx)
		d.pendingBusy = d.busyPolls

	case protocol.OpcodeControl:
		if fieldBits != d.addrBits {
			return fmt.Errorf("sim: control field is %d bits, device expects %d", fieldBits, d.addrBits)
		}
		if len(tr) != 1 {
			return errors.New("sim: control commands are header-only")
		}
		switch field >> (d.addrBits - 2) {
		case protocol.SubcodeWriteEnable:
			d.writeEnabled = true
		case protocol.SubcodeWriteDisable:
			d.writeEnabled = false
		case protocol.SubcodeEraseAll:
			if !d.writeEnabled {
				d.writesIgnored++
				return nil
			}
			for i := range d.mem {
				d.mem[i] = 0xFF
			}
			d.pendingBusy = d.busyPolls
		default:
			return fmt.Errorf("sim: unsupported control subcode %d", field>>(d.addrBits-2))
		}

	default:
		return fmt.Errorf("sim: unknown opcode %d", op)
	}

	return nil
}

// decodeHeader recovers opcode and address field from the 2-byte header. The
// highest set bit is the start marker; everything above it is padding.
func (d *simDevice) decodeHeader(hdr []byte) (op byte, field uint16, fieldBits int, err error) {
	if len(hdr) != protocol.HeaderSize {
		return 0, 0, 0, fmt.Errorf("sim: header is %d bytes, want %d", len(hdr), protocol.HeaderSize)
	}

	cmd := binary.BigEndian.Uint16(hdr)
	if cmd == 0 {
		return 0, 0, 0, errors.New("sim: no start bit")
	}

	pos := bits.Len16(cmd) - 1
	if pos < 2 {
		return 0, 0, 0, errors.New("sim: header too short for an opcode")
	}

	op = byte(cmd>>(pos-2)) & 0x3
	fieldBits = pos - 2
	field = cmd & (1<<fieldBits - 1)
	return op, field, fieldBits, nil
}
