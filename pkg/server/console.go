package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/log"
	"github.com/loraroute/loraroute-go/pkg/registry"
)

var (
	// ErrUnauthorized means the signer has no authority over the
	// organization the request touches.
	ErrUnauthorized = errors.New("signer not authorized")
	// ErrStaleRequest means the request timestamp falls outside the
	// accepted clock skew window.
	ErrStaleRequest = errors.New("request timestamp outside accepted window")
)

// DefaultMaxClockSkew bounds how far a request timestamp may drift from
// the server clock in either direction.
const DefaultMaxClockSkew = 10 * time.Minute

// Console is the authenticated management surface over a registry.
type Console struct {
	registry *registry.Registry
	verifier auth.Authenticator
	audit    log.Logger
	admins   []auth.PublicKey
	maxSkew  time.Duration
	now      func() time.Time
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithVerifier replaces the signature verifier. Tests use auth.AllowAll.
func WithVerifier(v auth.Authenticator) ConsoleOption {
	return func(c *Console) { c.verifier = v }
}

// WithAuditLogger sets the audit event sink.
func WithAuditLogger(l log.Logger) ConsoleOption {
	return func(c *Console) { c.audit = l }
}

// WithAdminKeys sets the keys allowed to create organizations and act on
// any organization's behalf.
func WithAdminKeys(keys ...auth.PublicKey) ConsoleOption {
	return func(c *Console) { c.admins = keys }
}

// WithMaxClockSkew overrides the request timestamp window.
func WithMaxClockSkew(d time.Duration) ConsoleOption {
	return func(c *Console) { c.maxSkew = d }
}

// NewConsole wraps a registry in the authenticated service surface.
func NewConsole(reg *registry.Registry, opts ...ConsoleOption) *Console {
	c := &Console{
		registry: reg,
		verifier: auth.Ed25519Verifier{},
		audit:    log.NoopLogger{},
		maxSkew:  DefaultMaxClockSkew,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// verify checks the request timestamp and signature.
func (c *Console) verify(req signedRequest) error {
	a := req.authData()

	skew := c.now().Sub(a.Timestamp)
	if skew < 0 {
		skew = -skew
	}
	if skew > c.maxSkew {
		return fmt.Errorf("%w: %s", ErrStaleRequest, a.Timestamp.Format(time.RFC3339))
	}

	bytes, err := req.signingBytes()
	if err != nil {
		return fmt.Errorf("encoding signed bytes: %w", err)
	}
	return c.verifier.Verify(bytes, a.Signature, a.Signer)
}

func (c *Console) isAdmin(key auth.PublicKey) bool {
	for _, admin := range c.admins {
		if admin.Equal(key) {
			return true
		}
	}
	return false
}

// requireAdmin gates operations reserved for the registry operator.
func (c *Console) requireAdmin(key auth.PublicKey) error {
	if !c.isAdmin(key) {
		return fmt.Errorf("%w: %s is not an admin key", ErrUnauthorized, key)
	}
	return nil
}

// authorizeOrg allows the organization's owner and any admin key.
func (c *Console) authorizeOrg(oui uint64, key auth.PublicKey) error {
	if c.isAdmin(key) {
		return nil
	}
	org, err := c.registry.GetOrg(oui)
	if err != nil {
		return err
	}
	if !org.Owner.Equal(key) {
		return fmt.Errorf("%w: %s does not own oui %d", ErrUnauthorized, key, oui)
	}
	return nil
}

// authorizeRoute resolves the route's owning organization and applies
// authorizeOrg. Admin keys bypass the route lookup so an admin can still
// clean up bindings whose route is already gone.
func (c *Console) authorizeRoute(routeID string, key auth.PublicKey) error {
	if c.isAdmin(key) {
		return nil
	}
	rt, err := c.registry.GetRoute(routeID)
	if err != nil {
		return err
	}
	return c.authorizeOrg(rt.OUI, key)
}

// logEvent appends one audit event recording the operation's outcome.
func (c *Console) logEvent(entity log.Entity, action log.Action, signer auth.PublicKey, oui uint64, routeID string, opErr error) {
	event := log.Event{
		Timestamp: c.now(),
		Entity:    entity,
		Action:    action,
		Outcome:   log.OutcomeAccepted,
		OUI:       oui,
		RouteID:   routeID,
		Signer:    signer.String(),
	}
	if opErr != nil {
		event.Outcome = log.OutcomeDeclined
		event.Detail = opErr.Error()
	}
	c.audit.Log(event)
}
