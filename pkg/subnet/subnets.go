package subnet

import (
	"fmt"
	"math/bits"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
)

// InvalidMarker is the displayable sentinel produced when a backwards range
// is decomposed. It is deliberately not an error; listing tools print it
// in place of the block list.
const InvalidMarker = "invalid"

// Subnet is a power-of-two aligned block of device addresses: the
// 2^(32-PrefixLen) addresses whose top PrefixLen bits equal those of Base.
type Subnet struct {
	Base      lorafield.DevAddr
	PrefixLen uint8
}

// String renders the block in CIDR style, e.g. "11223344/30".
func (s Subnet) String() string {
	return fmt.Sprintf("%s/%d", s.Base, s.PrefixLen)
}

// Size returns the number of addresses in the block.
func (s Subnet) Size() uint64 {
	return 1 << (32 - uint(s.PrefixLen))
}

// Subnets decomposes the constraint into the minimal ordered list of aligned
// blocks whose union is exactly [Start, End]. Each block's base is aligned
// to its own size. A backwards range yields nil; use [Constraint.SubnetStrings]
// when the sentinel form is wanted.
func (c Constraint) Subnets() []Subnet {
	if !c.IsValid() {
		return nil
	}

	var out []Subnet
	start := uint64(c.Start)
	end := uint64(c.End)
	for start <= end {
		// Largest block the alignment of start permits.
		size := uint64(1) << 32
		if start != 0 {
			size = uint64(1) << bits.TrailingZeros64(start)
		}
		// Shrink until the block fits the remaining range.
		for start+size-1 > end {
			size >>= 1
		}
		out = append(out, Subnet{
			Base:      lorafield.DevAddr(start),
			PrefixLen: uint8(32 - bits.TrailingZeros64(size)),
		})
		start += size
	}
	return out
}

// SubnetStrings returns the decomposition in display form. A backwards range
// yields the single "invalid" marker.
func (c Constraint) SubnetStrings() []string {
	subnets := c.Subnets()
	if len(subnets) == 0 {
		return []string{InvalidMarker}
	}
	out := make([]string, len(subnets))
	for i, s := range subnets {
		out[i] = s.String()
	}
	return out
}
