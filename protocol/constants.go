package protocol

// Opcodes. Two bits, transmitted right after the start bit.
const (
	// OpcodeRead reads from the EEPROM array with auto-increment
	OpcodeRead = 0x2

	// OpcodeWrite programs one word (the device self-erases it first)
	OpcodeWrite = 0x1

	// OpcodeControl selects the control group; a subcode in the address
	// field picks the actual operation
	OpcodeControl = 0x0
)

// Control-group subcodes. Two bits, placed in the two highest bits of the
// address field.
const (
	// SubcodeWriteEnable unlocks programming (EWEN)
	SubcodeWriteEnable = 3

	// SubcodeEraseAll erases the entire array (ERAL)
	SubcodeEraseAll = 2

	// SubcodeWriteDisable locks programming again (EWDS)
	SubcodeWriteDisable = 0
)

// Header and transfer constants.
const (
	// StartBit is the start marker, positioned immediately above the
	// 2-bit opcode (forming a 0b1xx prefix)
	StartBit = 1 << 2

	// HeaderSize is the serialized header length in bytes. The longest
	// command in the family is 3+9+1 = 13 bits, so two bytes always fit.
	HeaderSize = 2

	// ReadDummyBits is the number of dummy bits appended to read
	// commands; the device needs one extra clock before driving data out
	ReadDummyBits = 1

	// BitsPerWord is the transfer unit size for every bus transfer
	BitsPerWord = 8

	// ClockSpeedHz is the bus clock used for all transfers. 100 kHz is
	// conservative enough for every part in the family.
	ClockSpeedHz = 100000

	// StatusReady is the status byte the device returns once its
	// self-timed write cycle has completed
	StatusReady = 0xFF
)

// Address-width limits for the family's command header.
const (
	// MinAddrBits is the smallest supported address field width
	MinAddrBits = 5

	// MaxAddrBits is the largest supported address field width
	MaxAddrBits = 9
)
