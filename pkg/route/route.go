package route

import (
	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

// InitialNonce is the nonce a freshly created route carries. The nonce
// increments on every successful update and serves as an optimistic
// concurrency marker for clients; the registry itself does not enforce it
// as a precondition.
const InitialNonce uint32 = 1

// Route is a configured forwarding destination for packets matching the
// EUI pairs and DevAddr ranges bound to it. ID and OUI are immutable after
// creation.
type Route struct {
	ID        string          `json:"id"`
	NetID     lorafield.NetID `json:"net_id"`
	OUI       uint64          `json:"oui"`
	Server    Server          `json:"server"`
	MaxCopies uint32          `json:"max_copies"`
	Active    bool            `json:"active"`
	Nonce     uint32          `json:"nonce"`
}

// New builds an unsaved route for the given organization. The registry
// assigns the ID on creation.
func New(netID lorafield.NetID, oui uint64, maxCopies uint32) Route {
	return Route{
		NetID:     netID,
		OUI:       oui,
		MaxCopies: maxCopies,
		Active:    true,
		Nonce:     InitialNonce,
	}
}

// IncNonce returns a copy of the route with the nonce advanced.
func (r Route) IncNonce() Route {
	r.Nonce++
	return r
}

// Clone returns a deep copy of the route. The server's protocol
// configuration is pointer-backed, so a plain value copy would still
// share it with the original.
func (r Route) Clone() Route {
	r.Server = r.Server.clone()
	return r
}

// EuiPair binds an (AppEUI, DevEUI) identifier pair to a route for
// join-request routing. Membership is keyed by the full tuple.
type EuiPair struct {
	RouteID string        `json:"route_id"`
	AppEUI  lorafield.EUI `json:"app_eui"`
	DevEUI  lorafield.EUI `json:"dev_eui"`
}

// DevaddrRange binds an inclusive device address range to a route.
type DevaddrRange struct {
	RouteID string            `json:"route_id"`
	Start   lorafield.DevAddr `json:"start_addr"`
	End     lorafield.DevAddr `json:"end_addr"`
}

// Constraint returns the range as a subnet constraint.
func (d DevaddrRange) Constraint() subnet.Constraint {
	return subnet.Constraint{Start: d.Start, End: d.End}
}

// SessionKeyFilter limits which decrypted sessions a route may receive:
// only packets from Devaddr whose network session key matches SessionKey
// are delivered, at most MaxCopies times.
//
// SessionKey is the session key's hex encoding; filters with the same
// (OUI, Devaddr, SessionKey) triple are the same filter.
type SessionKeyFilter struct {
	OUI        uint64            `json:"oui"`
	Devaddr    lorafield.DevAddr `json:"devaddr"`
	SessionKey string            `json:"session_key"`
	MaxCopies  uint32            `json:"max_copies"`
}
