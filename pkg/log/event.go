package log

import (
	"time"
)

// Event is one audited registry operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Entity is the kind of record the operation touched.
	Entity Entity `cbor:"2,keyasint"`

	// Action is what the operation attempted.
	Action Action `cbor:"3,keyasint"`

	// Outcome records whether the registry applied the change.
	Outcome Outcome `cbor:"4,keyasint"`

	// OUI is the organization involved, when known.
	OUI uint64 `cbor:"5,keyasint,omitempty"`

	// RouteID is the route involved, when known.
	RouteID string `cbor:"6,keyasint,omitempty"`

	// Signer is the hex public key that signed the request, when present.
	Signer string `cbor:"7,keyasint,omitempty"`

	// Detail is the human-readable decline reason, empty when accepted.
	Detail string `cbor:"8,keyasint,omitempty"`
}

// Entity is the kind of registry record an event concerns.
type Entity uint8

const (
	// EntityOrg is an organization record.
	EntityOrg Entity = iota
	// EntityRoute is a route record.
	EntityRoute
	// EntityEuiPair is an EUI pair binding.
	EntityEuiPair
	// EntityDevaddrRange is a DevAddr range binding.
	EntityDevaddrRange
	// EntitySessionKeyFilter is a session key filter.
	EntitySessionKeyFilter
)

// String returns the entity name.
func (e Entity) String() string {
	switch e {
	case EntityOrg:
		return "org"
	case EntityRoute:
		return "route"
	case EntityEuiPair:
		return "eui_pair"
	case EntityDevaddrRange:
		return "devaddr_range"
	case EntitySessionKeyFilter:
		return "session_key_filter"
	default:
		return "unknown"
	}
}

// Action is the operation attempted on an entity.
type Action uint8

const (
	// ActionCreate creates an organization or route.
	ActionCreate Action = iota
	// ActionUpdate replaces a route wholesale.
	ActionUpdate
	// ActionDelete removes a route and cascades its bindings.
	ActionDelete
	// ActionAdd inserts a binding into a set.
	ActionAdd
	// ActionRemove removes a binding from a set.
	ActionRemove
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Outcome records how an operation ended.
type Outcome uint8

const (
	// OutcomeAccepted means the change was applied.
	OutcomeAccepted Outcome = iota
	// OutcomeDeclined means the registry rejected the change.
	OutcomeDeclined
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == OutcomeDeclined {
		return "declined"
	}
	return "accepted"
}
