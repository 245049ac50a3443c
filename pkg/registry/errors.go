package registry

import "errors"

// Registry errors.
var (
	// ErrOrgNotFound is returned when an OUI has no organization.
	ErrOrgNotFound = errors.New("org not found")

	// ErrRouteNotFound is returned when a route ID has no route.
	ErrRouteNotFound = errors.New("route not found")

	// ErrOutOfConstraint is returned when a DevAddr range does not lie
	// fully inside any of the owning organization's allocated constraints.
	ErrOutOfConstraint = errors.New("devaddr range outside org constraint")

	// ErrOrgHasNoConstraints signals an invariant violation: every
	// organization is given at least one constraint at creation time.
	ErrOrgHasNoConstraints = errors.New("org has no devaddr constraints")

	// ErrInvalidDevaddrCount is returned when a Helium organization asks
	// for a device address block that is not a positive multiple of 8.
	ErrInvalidDevaddrCount = errors.New("devaddr count must be a positive multiple of 8")

	// ErrHeliumSpaceExhausted is returned when the Helium NetID has no
	// unallocated block of the requested size left.
	ErrHeliumSpaceExhausted = errors.New("helium devaddr space exhausted")
)
