package device

import "fmt"

// UnknownDeviceError indicates that a requested catalog name matched no entry.
type UnknownDeviceError struct {
	Name string
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("unknown EEPROM type: %s", e.Name)
}

// GeometryError indicates an invalid size or address-bit width.
type GeometryError struct {
	Field  string
	Value  int
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// UnsupportedModeError indicates that the requested data organization is not
// in the profile's supported set.
type UnsupportedModeError struct {
	Device string
	X16    bool
}

func (e *UnsupportedModeError) Error() string {
	org := "x8"
	if e.X16 {
		org = "x16"
	}
	return fmt.Sprintf("%s does not support %s organization", e.Device, org)
}

// ConflictError indicates that a configuration named a catalog entry and
// supplied explicit geometry parameters at the same time.
type ConflictError struct{}

func (e *ConflictError) Error() string {
	return "specify either an EEPROM type or explicit geometry parameters, but not both"
}
