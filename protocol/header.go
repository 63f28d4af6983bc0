package protocol

import "encoding/binary"

// Header is a serialized command header: a byte-aligned buffer plus the
// number of significant command bits it carries. The leading zero bits up to
// the byte boundary are padding the chip ignores.
type Header struct {
	buf  [HeaderSize]byte
	bits int
}

// Bytes returns the header ready for transmission, most significant
// byte first.
func (h Header) Bytes() []byte {
	return h.buf[:]
}

// Bits returns the number of significant command bits in the header:
// start bit, opcode, and the address/subcode field including dummy bits.
func (h Header) Bits() int {
	return h.bits
}

// Encode builds a command header from an opcode, an address (or subcode
// field value) and the field geometry.
//
// The field is addrBits+dummyBits wide; addr is masked to it, silently
// discarding any higher bits. The start bit is merged with the opcode and
// the whole value is serialized big-endian into exactly HeaderSize bytes:
//
//	value = ((opcode | 0b100) << (addrBits+dummyBits)) | (addr & mask)
//
// The extra leading zero bits are required padding so the transfer length is
// a whole number of bytes; they are transparent to the chip, which only
// starts interpreting a command on the first high bit.
func Encode(opcode byte, addr uint16, dummyBits, addrBits int) Header {
	bits := addrBits + dummyBits
	addr &= 1<<bits - 1
	command := uint16(opcode|StartBit)<<bits | addr

	var h Header
	binary.BigEndian.PutUint16(h.buf[:], command)
	h.bits = 3 + bits
	return h
}

// EncodeRead builds a READ header for the given word address. Read commands
// carry one dummy bit after the address.
func EncodeRead(addrBits int, addr uint16) Header {
	return Encode(OpcodeRead, addr, ReadDummyBits, addrBits)
}

// EncodeWrite builds a WRITE header for the given word address.
func EncodeWrite(addrBits int, addr uint16) Header {
	return Encode(OpcodeWrite, addr, 0, addrBits)
}

// EncodeControl builds a control-group header. The 2-bit subcode occupies
// the two highest bits of the address field, which is the fixed encoding the
// family uses to tell control operations apart from addressed ones.
func EncodeControl(addrBits int, subcode uint16) Header {
	return Encode(OpcodeControl, subcode<<(addrBits-2), 0, addrBits)
}
