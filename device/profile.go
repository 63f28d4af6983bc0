package device

import "github.com/flashkit/go-93cxx/protocol"

// Organization is a bitset of the data-word widths a part supports.
type Organization uint8

// Supported data organizations.
const (
	// OrgX8 means the part can run with 8-bit data words
	OrgX8 Organization = 1 << iota

	// OrgX16 means the part can run with 16-bit data words
	OrgX16
)

// Profile describes one EEPROM part or a user-specified custom geometry.
// Profiles are immutable; Select derives an access-mode-specific Selection.
type Profile struct {
	// Name identifies the part. Informational only.
	Name string

	// Size is the total addressable storage in bytes. Must be a nonzero
	// power of two.
	Size uint16

	// AddrBits is the address-field width in command headers for
	// byte-organized (x8) access. Must be between protocol.MinAddrBits
	// and protocol.MaxAddrBits.
	AddrBits uint8

	// Orgs is the set of data organizations the part supports.
	Orgs Organization
}

// Custom builds a profile for a part outside the catalogs. Custom parts are
// assumed to support both organizations; the supplied address-bit count is
// the x8 width, as for catalog entries.
func Custom(size uint16, addrBits uint8) *Profile {
	return &Profile{
		Name:     "custom",
		Size:     size,
		AddrBits: addrBits,
		Orgs:     OrgX8 | OrgX16,
	}
}

// validate checks the profile geometry.
func (p *Profile) validate() error {
	if p.Size == 0 {
		return &GeometryError{Field: "size", Value: 0, Reason: "size cannot be zero"}
	}
	if p.Size&(p.Size-1) != 0 {
		return &GeometryError{Field: "size", Value: int(p.Size), Reason: "not a power of 2"}
	}
	if p.AddrBits < protocol.MinAddrBits || p.AddrBits > protocol.MaxAddrBits {
		return &GeometryError{
			Field: "addr-bits", Value: int(p.AddrBits),
			Reason: "must be between 5 and 9",
		}
	}
	return nil
}

// Select validates the profile for the requested organization and finalizes
// it into a Selection. In x16 mode the effective address-bit width is one
// less than the profile's nominal count: word organization halves the
// addressable word count relative to the byte count.
func (p *Profile) Select(x16 bool) (*Selection, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	want := OrgX8
	if x16 {
		want = OrgX16
	}
	if p.Orgs&want == 0 {
		return nil, &UnsupportedModeError{Device: p.Name, X16: x16}
	}

	addrBits := int(p.AddrBits)
	if x16 {
		addrBits--
	}

	return &Selection{
		profile:  *p,
		x16:      x16,
		addrBits: addrBits,
	}, nil
}

// Selection is a profile finalized for one access mode. It is immutable and
// carries the effective address-bit width every command header uses.
type Selection struct {
	profile  Profile
	x16      bool
	addrBits int
}

// Name returns the part name.
func (s *Selection) Name() string { return s.profile.Name }

// Size returns the total storage in bytes.
func (s *Selection) Size() int { return int(s.profile.Size) }

// X16 reports whether 16-bit organization is selected.
func (s *Selection) X16() bool { return s.x16 }

// WordSize returns the selected data-word width in bytes.
func (s *Selection) WordSize() int {
	if s.x16 {
		return 2
	}
	return 1
}

// Words returns the number of addressable words.
func (s *Selection) Words() int {
	return s.Size() / s.WordSize()
}

// AddrBits returns the effective address-field width for command headers.
func (s *Selection) AddrBits() int { return s.addrBits }
