// Package device models 93Cxx EEPROM geometries.
//
// A Profile describes one part: its size in bytes, the address-field width
// its command headers use, and which data organizations (x8, x16) it
// supports. Profiles come from the built-in catalog, from a user-supplied
// YAML catalog, or from explicit size/addr-bits parameters for parts the
// catalogs don't know.
//
// # Selecting an Access Mode
//
// A Profile is geometry only; before talking to a part the caller selects an
// organization:
//
//	p, err := device.Lookup("93c66")
//	sel, err := p.Select(true) // x16
//
// Select validates the geometry and the requested organization and returns
// an immutable Selection. In x16 mode the selection carries one fewer
// address bit than the profile: a word-organized part addresses half as many
// words as it has bytes, so one address bit drops out. The adjustment is
// applied exactly once, here, and never re-derived during an operation.
//
// # Tool Configuration
//
// Config mirrors the flag set of the command-line tool. Resolve turns it
// into a Profile, rejecting configurations that name a catalog entry and
// supply explicit geometry at the same time.
package device
