package device

// Config captures a user's device selection as the command-line tool
// collects it: either a catalog name, or explicit geometry, plus the
// requested organization.
type Config struct {
	// Type is a catalog part name, empty when geometry is given explicitly.
	Type string

	// Size and AddrBits describe a custom geometry. Zero means unset.
	Size     uint16
	AddrBits uint8

	// X16 selects 16-bit organization.
	X16 bool

	// Extra holds additional catalog entries, searched before the
	// built-in table. Optional.
	Extra []Profile
}

// Resolve turns the configuration into a Profile. Naming a catalog entry and
// supplying explicit geometry at the same time is a configuration error;
// Resolve reports it before any device contact can happen. With neither, a
// default custom geometry is assumed (256 bytes, 8 address bits), matching
// the tool's historical behavior.
func (c Config) Resolve() (*Profile, error) {
	explicit := c.Size != 0 || c.AddrBits != 0

	if c.Type != "" && explicit {
		return nil, &ConflictError{}
	}

	if c.Type != "" {
		if len(c.Extra) > 0 {
			if p, err := LookupIn(c.Extra, c.Type); err == nil {
				return p, nil
			}
		}
		return Lookup(c.Type)
	}

	p := Custom(256, 8)
	if c.Size != 0 {
		p.Size = c.Size
	}
	if c.AddrBits != 0 {
		p.AddrBits = c.AddrBits
	}
	return p, nil
}
