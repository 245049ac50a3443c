package lorafield

import (
	"errors"
	"fmt"
	"strconv"
)

// Field parsing errors.
var (
	ErrFieldLength = errors.New("hex field has wrong length")
	ErrFieldDigits = errors.New("hex field has invalid digits")
)

// NetID is a 24-bit LoRaWAN network identifier.
type NetID uint32

// DevAddr is a 32-bit LoRaWAN device address.
type DevAddr uint32

// EUI is a 64-bit extended unique identifier (AppEUI/DevEUI).
type EUI uint64

// Hex widths for the three field types.
const (
	netIDWidth   = 6
	devAddrWidth = 8
	euiWidth     = 16
)

// String returns the NetID as 6 uppercase hex characters.
func (n NetID) String() string { return formatHex(uint64(n), netIDWidth) }

// String returns the DevAddr as 8 uppercase hex characters.
func (d DevAddr) String() string { return formatHex(uint64(d), devAddrWidth) }

// String returns the EUI as 16 uppercase hex characters.
func (e EUI) String() string { return formatHex(uint64(e), euiWidth) }

// MarshalText renders the NetID as fixed-width uppercase hex.
func (n NetID) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText parses a 6-character hex string.
func (n *NetID) UnmarshalText(text []byte) error {
	v, err := parseHex(string(text), netIDWidth)
	if err != nil {
		return err
	}
	*n = NetID(v)
	return nil
}

// MarshalText renders the DevAddr as fixed-width uppercase hex.
func (d DevAddr) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses an 8-character hex string.
func (d *DevAddr) UnmarshalText(text []byte) error {
	v, err := parseHex(string(text), devAddrWidth)
	if err != nil {
		return err
	}
	*d = DevAddr(v)
	return nil
}

// MarshalText renders the EUI as fixed-width uppercase hex.
func (e EUI) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText parses a 16-character hex string.
func (e *EUI) UnmarshalText(text []byte) error {
	v, err := parseHex(string(text), euiWidth)
	if err != nil {
		return err
	}
	*e = EUI(v)
	return nil
}

// ParseNetID parses a 6-character hex string into a NetID.
func ParseNetID(s string) (NetID, error) {
	v, err := parseHex(s, netIDWidth)
	return NetID(v), err
}

// ParseDevAddr parses an 8-character hex string into a DevAddr.
func ParseDevAddr(s string) (DevAddr, error) {
	v, err := parseHex(s, devAddrWidth)
	return DevAddr(v), err
}

// ParseEUI parses a 16-character hex string into an EUI.
func ParseEUI(s string) (EUI, error) {
	v, err := parseHex(s, euiWidth)
	return EUI(v), err
}

func formatHex(v uint64, width int) string {
	return fmt.Sprintf("%0*X", width, v)
}

func parseHex(s string, width int) (uint64, error) {
	if len(s) != width {
		return 0, fmt.Errorf("%w: got %d chars, want %d", ErrFieldLength, len(s), width)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldDigits, s)
	}
	return v, nil
}
