package subnet

import (
	"errors"
	"fmt"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
)

// ErrBackwardsRange is returned when a constraint's start address exceeds
// its end address.
var ErrBackwardsRange = errors.New("start_addr cannot be greater than end_addr")

// Constraint is an inclusive [Start, End] device address range.
type Constraint struct {
	Start lorafield.DevAddr `json:"start_addr" yaml:"start_addr"`
	End   lorafield.DevAddr `json:"end_addr" yaml:"end_addr"`
}

// NewConstraint builds a constraint, rejecting backwards ranges.
func NewConstraint(start, end lorafield.DevAddr) (Constraint, error) {
	if end < start {
		return Constraint{}, ErrBackwardsRange
	}
	return Constraint{Start: start, End: end}, nil
}

// FullRange returns the constraint covering the entire address block owned
// by the NetID.
func FullRange(id lorafield.NetID) Constraint {
	return Constraint{Start: id.RangeStart(), End: id.RangeEnd()}
}

// RangeOf returns the constraint of count addresses beginning at start,
// inclusive of start itself.
func RangeOf(start lorafield.DevAddr, count uint32) Constraint {
	return Constraint{Start: start, End: start + lorafield.DevAddr(count-1)}
}

// String renders the constraint as "start-end" in fixed-width hex.
func (c Constraint) String() string {
	return fmt.Sprintf("%s-%s", c.Start, c.End)
}

// IsValid reports whether the range is forwards.
func (c Constraint) IsValid() bool {
	return c.Start <= c.End
}

// Size returns the number of addresses in the range. Zero for a backwards
// range.
func (c Constraint) Size() uint64 {
	if !c.IsValid() {
		return 0
	}
	return uint64(c.End) - uint64(c.Start) + 1
}

// Contains reports whether other lies fully inside this constraint.
func (c Constraint) Contains(other Constraint) bool {
	return c.Start <= other.Start && other.End <= c.End
}

// ContainsAddr reports whether a single address lies inside this constraint.
func (c Constraint) ContainsAddr(addr lorafield.DevAddr) bool {
	return c.Start <= addr && addr <= c.End
}

// NextStart returns the first address after this constraint. It reports
// false when the constraint ends at the top of the address space.
func (c Constraint) NextStart() (lorafield.DevAddr, bool) {
	if c.End == ^lorafield.DevAddr(0) {
		return 0, false
	}
	return c.End + 1, true
}
