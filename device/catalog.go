package device

import "strings"

// catalog is the built-in part table. Entries are looked up by name at
// configuration time and never mutated.
var catalog = []Profile{
	{Name: "93c66", Size: 512, AddrBits: 9, Orgs: OrgX8 | OrgX16},
	{Name: "93c56", Size: 256, AddrBits: 8, Orgs: OrgX8 | OrgX16},
	{Name: "93c46", Size: 128, AddrBits: 7, Orgs: OrgX8 | OrgX16},
	{Name: "93c06", Size: 32, AddrBits: 6, Orgs: OrgX16},
}

// Lookup returns the built-in catalog entry for the given part name.
// Matching is case-insensitive and exact. Returns UnknownDeviceError when no
// entry matches.
func Lookup(name string) (*Profile, error) {
	return LookupIn(catalog, name)
}

// LookupIn searches an arbitrary profile list, such as one returned by
// LoadCatalog, using the same matching rules as Lookup.
func LookupIn(profiles []Profile, name string) (*Profile, error) {
	for i := range profiles {
		if strings.EqualFold(profiles[i].Name, name) {
			p := profiles[i]
			return &p, nil
		}
	}
	return nil, &UnknownDeviceError{Name: name}
}

// Catalog returns a copy of the built-in part table.
func Catalog() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}
