// Package lorafield provides the fixed-width LoRaWAN identifier types used
// throughout the routing configuration registry.
//
// Three field types are defined:
//
//   - NetID: 24-bit network identifier, rendered as 6 uppercase hex chars
//   - DevAddr: 32-bit device address, rendered as 8 uppercase hex chars
//   - EUI: 64-bit extended unique identifier, rendered as 16 uppercase hex chars
//
// All three marshal to and from fixed-width uppercase hex strings in text and
// JSON, and parsing rejects input of the wrong length.
//
// # NetID Address Derivation
//
// A NetID carries a 3-bit type tag in its top bits. The type determines how
// the 32-bit DevAddr space is partitioned between a fixed prefix, the network
// identifier (NwkID) and the per-device address bits:
//
//	type  prefix bits  nwkid width  addr bits
//	0     0            6            25
//	1     10           6            24
//	2     110          9            20
//	3     1110         10           17
//	4     11110        11           15
//	5     111110       12           13
//	6     1111110      13           10
//	7     11111110     14           7
//
// [NetID.RangeStart] and [NetID.RangeEnd] produce the first and last DevAddr
// of the block a NetID owns; see pkg/subnet for range arithmetic on top of
// these.
package lorafield
