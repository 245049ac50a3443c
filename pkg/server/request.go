package server

import (
	"crypto/ed25519"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/route"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

// reqEncMode is the canonical encoding both signer and verifier must use
// so the signed bytes are reproducible.
var reqEncMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	var err error
	reqEncMode, err = opts.EncMode()
	if err != nil {
		panic(err)
	}
}

// Auth is the authentication envelope embedded in every mutating request.
// Signature covers the whole request encoded with the Signature field
// empty.
type Auth struct {
	Signer    auth.PublicKey `cbor:"1,keyasint"`
	Timestamp time.Time      `cbor:"2,keyasint"`
	Signature []byte         `cbor:"3,keyasint,omitempty"`
}

func (a Auth) authData() Auth { return a }

type signedRequest interface {
	authData() Auth
	signingBytes() ([]byte, error)
}

// CreateHeliumOrgReq requests a new organization with an automatic
// allocation out of the Helium address space.
type CreateHeliumOrgReq struct {
	Auth
	Owner        auth.PublicKey `cbor:"4,keyasint"`
	Payer        auth.PublicKey `cbor:"5,keyasint"`
	DevaddrCount uint32         `cbor:"6,keyasint"`
}

func (r CreateHeliumOrgReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// CreateRoamerOrgReq requests a new organization granted the full range
// of its own NetID.
type CreateRoamerOrgReq struct {
	Auth
	Owner auth.PublicKey  `cbor:"4,keyasint"`
	Payer auth.PublicKey  `cbor:"5,keyasint"`
	NetID lorafield.NetID `cbor:"6,keyasint"`
}

func (r CreateRoamerOrgReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// GrantConstraintReq appends an address block to an organization.
type GrantConstraintReq struct {
	Auth
	OUI        uint64            `cbor:"4,keyasint"`
	Constraint subnet.Constraint `cbor:"5,keyasint"`
}

func (r GrantConstraintReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// RouteReq creates or updates a route.
type RouteReq struct {
	Auth
	OUI   uint64      `cbor:"4,keyasint"`
	Route route.Route `cbor:"5,keyasint"`
}

func (r RouteReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// DeleteRouteReq deletes a route by ID.
type DeleteRouteReq struct {
	Auth
	ID string `cbor:"4,keyasint"`
}

func (r DeleteRouteReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// ClearBindingsReq removes every binding of one kind from a route.
type ClearBindingsReq struct {
	Auth
	RouteID string `cbor:"4,keyasint"`
}

func (r ClearBindingsReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// EuiPairReq adds or removes one EUI pair binding.
type EuiPairReq struct {
	Auth
	Pair route.EuiPair `cbor:"4,keyasint"`
}

func (r EuiPairReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// DevaddrRangeReq adds or removes one DevAddr range binding.
type DevaddrRangeReq struct {
	Auth
	Range route.DevaddrRange `cbor:"4,keyasint"`
}

func (r DevaddrRangeReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// FilterReq adds or removes one session key filter.
type FilterReq struct {
	Auth
	Filter route.SessionKeyFilter `cbor:"4,keyasint"`
}

func (r FilterReq) signingBytes() ([]byte, error) {
	r.Signature = nil
	return reqEncMode.Marshal(r)
}

// Sign computes the detached signature for req with an ed25519 private
// key. The caller stores the result in the request's Signature field.
// Intended for clients and tests.
func Sign(req signedRequest, priv ed25519.PrivateKey) ([]byte, error) {
	bytes, err := req.signingBytes()
	if err != nil {
		return nil, err
	}
	return auth.Sign(priv, bytes), nil
}
