package route

import (
	"errors"
	"fmt"
)

// ErrUnsupportedRegion is returned when parsing an unknown region name.
var ErrUnsupportedRegion = errors.New("unsupported region")

// Region identifies a LoRaWAN regional parameter set.
type Region uint8

// Supported regions.
const (
	RegionUS915 Region = iota
	RegionEU868
	RegionEU433
	RegionCN470
	RegionCN779
	RegionAU915
	RegionAS923_1
	RegionAS923_1B
	RegionAS923_2
	RegionAS923_3
	RegionAS923_4
	RegionKR920
	RegionIN865
	RegionCD900_1A
)

var regionNames = map[Region]string{
	RegionUS915:    "US915",
	RegionEU868:    "EU868",
	RegionEU433:    "EU433",
	RegionCN470:    "CN470",
	RegionCN779:    "CN779",
	RegionAU915:    "AU915",
	RegionAS923_1:  "AS923_1",
	RegionAS923_1B: "AS923_1B",
	RegionAS923_2:  "AS923_2",
	RegionAS923_3:  "AS923_3",
	RegionAS923_4:  "AS923_4",
	RegionKR920:    "KR920",
	RegionIN865:    "IN865",
	RegionCD900_1A: "CD900_1A",
}

// String returns the canonical region name.
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("REGION(%d)", uint8(r))
}

// ParseRegion parses a canonical region name.
func ParseRegion(s string) (Region, error) {
	for r, name := range regionNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedRegion, s)
}

// MarshalText renders the region name.
func (r Region) MarshalText() ([]byte, error) {
	if _, ok := regionNames[r]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedRegion, uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText parses a region name.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
