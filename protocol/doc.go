// Package protocol implements the command encoding for 93Cxx-family serial EEPROMs.
//
// This package provides pure functions to build the command headers the
// device family understands. It performs no I/O: the bus and programmer
// packages consume the headers it produces.
//
// # Command Structure
//
// Every command is a bit string, sent most-significant-bit first:
//
//	[START(1)][OPCODE(2)][ADDRESS or SUBCODE(addr_bits)][DUMMY(0..1)]
//
// Where:
//   - START is a single 1 bit. The chip begins interpreting a command on
//     the first high data bit it sees while its select line is asserted.
//   - OPCODE selects read (0b10), write (0b01), or the control group (0b00).
//   - ADDRESS is the word address, addr_bits wide. For the control group the
//     field instead carries a 2-bit subcode in its two highest bits.
//   - One DUMMY bit is appended to read commands; the device needs one extra
//     clock before it starts driving data out.
//
// # Byte Alignment
//
// Opcode plus address rarely add up to a whole number of bytes, and many
// bus controllers refuse odd word sizes. Since leading zero bits are
// transparent to the chip (it waits for the start bit), the command value is
// left-padded with zeroes and serialized big-endian into exactly
// HeaderSize bytes, so transfers always run at 8 bits per word.
//
// # Usage
//
//	hdr := protocol.EncodeRead(7, 0x2A)   // READ word 0x2A, 7 address bits
//	hdr := protocol.EncodeWrite(7, 0x2A)  // WRITE word 0x2A
//	hdr := protocol.EncodeControl(7, protocol.SubcodeWriteEnable)
//
// Address values wider than the field are silently masked to it, mirroring
// the hardware's own bit-width-limited command register.
package protocol
