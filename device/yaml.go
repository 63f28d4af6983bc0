package device

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// catalogEntry is the YAML shape of one user-supplied part definition.
type catalogEntry struct {
	Name     string   `yaml:"name"`
	Size     uint16   `yaml:"size"`
	AddrBits uint8    `yaml:"addr-bits"`
	Orgs     []string `yaml:"organizations"`
}

// LoadCatalog parses a user-supplied parts file. The format is a YAML list:
//
//	- name: at93c46
//	  size: 128
//	  addr-bits: 7
//	  organizations: [x8, x16]
//
// Every entry is validated with the same rules as built-in profiles; the
// first invalid entry aborts the load.
func LoadCatalog(r io.Reader) ([]Profile, error) {
	var entries []catalogEntry
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	profiles := make([]Profile, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: missing name", i)
		}

		var orgs Organization
		for _, o := range e.Orgs {
			switch o {
			case "x8":
				orgs |= OrgX8
			case "x16":
				orgs |= OrgX16
			default:
				return nil, fmt.Errorf("catalog entry %q: unknown organization %q", e.Name, o)
			}
		}
		if orgs == 0 {
			return nil, fmt.Errorf("catalog entry %q: no organizations listed", e.Name)
		}

		p := Profile{
			Name:     e.Name,
			Size:     e.Size,
			AddrBits: e.AddrBits,
			Orgs:     orgs,
		}
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.Name, err)
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}
