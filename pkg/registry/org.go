package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

// Org is an organization owning a slice of the device address space.
// The OUI is assigned once and never reused, even though organizations
// cannot currently be deleted.
type Org struct {
	OUI         uint64              `json:"oui"`
	Owner       auth.PublicKey      `json:"owner"`
	Payer       auth.PublicKey      `json:"payer"`
	Nonce       uint32              `json:"nonce"`
	Constraints []subnet.Constraint `json:"constraints"`
}

// clone returns a deep copy so callers never alias stored state.
func (o Org) clone() Org {
	out := o
	out.Owner = append(auth.PublicKey(nil), o.Owner...)
	out.Payer = append(auth.PublicKey(nil), o.Payer...)
	out.Constraints = append([]subnet.Constraint(nil), o.Constraints...)
	return out
}

// organizations is the OUI-keyed collection plus the two allocation
// cursors: the monotonic OUI counter and the next unallocated Helium
// device address.
type organizations struct {
	mu sync.RWMutex

	orgs map[uint64]Org

	nextOUI uint64

	heliumNetID    lorafield.NetID
	nextHeliumAddr lorafield.DevAddr
	heliumEnd      lorafield.DevAddr
	heliumSpent    bool
}

func newOrganizations(heliumNetID lorafield.NetID) *organizations {
	return &organizations{
		orgs:           make(map[uint64]Org),
		heliumNetID:    heliumNetID,
		nextHeliumAddr: heliumNetID.RangeStart(),
		heliumEnd:      heliumNetID.RangeEnd(),
	}
}

// createHelium assigns the next OUI and carves the next unallocated block
// of devaddrCount addresses out of the Helium NetID space.
func (c *organizations) createHelium(owner, payer auth.PublicKey, devaddrCount uint32) (Org, error) {
	if devaddrCount == 0 || devaddrCount%8 != 0 {
		return Org{}, fmt.Errorf("%w: got %d", ErrInvalidDevaddrCount, devaddrCount)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.heliumSpent || uint64(c.nextHeliumAddr)+uint64(devaddrCount)-1 > uint64(c.heliumEnd) {
		return Org{}, fmt.Errorf("%w: requested %d addresses", ErrHeliumSpaceExhausted, devaddrCount)
	}

	constraint := subnet.RangeOf(c.nextHeliumAddr, devaddrCount)
	if next, ok := constraint.NextStart(); ok {
		c.nextHeliumAddr = next
	} else {
		c.heliumSpent = true
	}

	return c.insert(owner, payer, constraint), nil
}

// createRoamer assigns the next OUI and grants the full address range of
// the externally supplied NetID.
func (c *organizations) createRoamer(owner, payer auth.PublicKey, netID lorafield.NetID) (Org, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insert(owner, payer, subnet.FullRange(netID)), nil
}

// insert stores a fresh organization. Caller holds the write lock.
func (c *organizations) insert(owner, payer auth.PublicKey, constraint subnet.Constraint) Org {
	c.nextOUI++
	org := Org{
		OUI:         c.nextOUI,
		Owner:       append(auth.PublicKey(nil), owner...),
		Payer:       append(auth.PublicKey(nil), payer...),
		Constraints: []subnet.Constraint{constraint},
	}
	c.orgs[org.OUI] = org
	return org.clone()
}

// addConstraint appends an admin-specified address block to an existing
// organization.
func (c *organizations) addConstraint(oui uint64, constraint subnet.Constraint) (Org, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	org, ok := c.orgs[oui]
	if !ok {
		return Org{}, fmt.Errorf("%w: oui %d", ErrOrgNotFound, oui)
	}
	org.Constraints = append(org.Constraints, constraint)
	c.orgs[oui] = org
	return org.clone(), nil
}

func (c *organizations) get(oui uint64) (Org, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	org, ok := c.orgs[oui]
	if !ok {
		return Org{}, false
	}
	return org.clone(), true
}

func (c *organizations) list() []Org {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Org, 0, len(c.orgs))
	for _, org := range c.orgs {
		out = append(out, org.clone())
	}
	slices.SortFunc(out, func(a, b Org) int {
		return cmp.Compare(a.OUI, b.OUI)
	})
	return out
}

// constraints returns the organization's allocated ranges without cloning
// the whole record.
func (c *organizations) constraints(oui uint64) ([]subnet.Constraint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	org, ok := c.orgs[oui]
	if !ok {
		return nil, false
	}
	return append([]subnet.Constraint(nil), org.Constraints...), true
}
