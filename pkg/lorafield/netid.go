package lorafield

// Well-known Helium NetIDs. New Helium organizations are allocated device
// address blocks out of the type 6 space.
const (
	HeliumNetIDType0 NetID = 0x00003C
	HeliumNetIDType3 NetID = 0x60002D
	HeliumNetIDType6 NetID = 0xC00053
)

// Per-type field widths for the classic LoRaWAN NetID encoding. The prefix
// is type one-bits followed by a terminating zero, so it occupies type+1
// bits. Types 3..7 leave unused gap bits between the NwkID field and the
// address bits.
var (
	nwkIDWidths = [8]uint{6, 6, 9, 10, 11, 12, 13, 14}
	addrBits    = [8]uint{25, 24, 20, 17, 15, 13, 10, 7}
)

// Type returns the 3-bit type tag in the top bits of the NetID.
func (n NetID) Type() uint8 {
	return uint8(n >> 21 & 0x7)
}

// NwkID returns the network identifier bits of the NetID. The width of the
// field depends on the NetID type.
func (n NetID) NwkID() uint32 {
	return uint32(n) & (1<<nwkIDWidths[n.Type()] - 1)
}

// RangeStart returns the first DevAddr of the address block this NetID owns:
// the type prefix, followed by the NwkID, with all device address bits zero.
func (n NetID) RangeStart() DevAddr {
	t := n.Type()
	prefix := uint32(1)<<(t+1) - 2
	return DevAddr(prefix<<(31-t) | n.NwkID()<<addrBits[t])
}

// RangeEnd returns the last DevAddr of the address block this NetID owns:
// RangeStart with all device address bits set.
func (n NetID) RangeEnd() DevAddr {
	return n.RangeStart() | DevAddr(uint32(1)<<addrBits[n.Type()]-1)
}

// AddrBitWidth returns the number of per-device address bits for this
// NetID's type, i.e. the block it owns holds 2^AddrBitWidth addresses.
func (n NetID) AddrBitWidth() uint {
	return addrBits[n.Type()]
}
