package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/notify"
	"github.com/loraroute/loraroute-go/pkg/route"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

// Registry owns all routing configuration state. Construct one at process
// start and hand the same instance to every request handler; there is no
// ambient global.
type Registry struct {
	// mu serializes mutating operations so invariants spanning two
	// collections (constraint checks, cascade deletes) cannot race.
	// Reads bypass it and take only the per-collection RWMutex.
	mu sync.Mutex

	orgs     *organizations
	routes   *routes
	euis     *euiPairs
	devaddrs *devaddrRanges
	filters  *sessionKeyFilters

	hub *notify.Hub
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	heliumNetID lorafield.NetID
}

// WithHeliumNetID overrides the NetID new Helium organizations draw their
// device address blocks from. The default is the well-known type 6 Helium
// NetID.
func WithHeliumNetID(id lorafield.NetID) Option {
	return func(o *options) { o.heliumNetID = id }
}

// New creates an empty registry publishing change events to hub.
func New(hub *notify.Hub, opts ...Option) *Registry {
	o := options{heliumNetID: lorafield.HeliumNetIDType6}
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		orgs:     newOrganizations(o.heliumNetID),
		routes:   newRoutes(),
		euis:     newEuiPairs(),
		devaddrs: newDevaddrRanges(),
		filters:  newSessionKeyFilters(),
		hub:      hub,
	}
}

// CreateHeliumOrg allocates the next OUI and the next unallocated block of
// devaddrCount addresses out of the Helium NetID space.
func (r *Registry) CreateHeliumOrg(owner, payer auth.PublicKey, devaddrCount uint32) (Org, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, err := r.orgs.createHelium(owner, payer, devaddrCount)
	if err != nil {
		return Org{}, err
	}
	r.routes.ensureOrg(org.OUI)
	return org, nil
}

// CreateRoamerOrg allocates the next OUI and grants the full address range
// of the supplied NetID.
func (r *Registry) CreateRoamerOrg(owner, payer auth.PublicKey, netID lorafield.NetID) (Org, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, err := r.orgs.createRoamer(owner, payer, netID)
	if err != nil {
		return Org{}, err
	}
	r.routes.ensureOrg(org.OUI)
	return org, nil
}

// GrantConstraint appends an admin-specified address block to an existing
// organization.
func (r *Registry) GrantConstraint(oui uint64, constraint subnet.Constraint) (Org, error) {
	if !constraint.IsValid() {
		return Org{}, subnet.ErrBackwardsRange
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orgs.addConstraint(oui, constraint)
}

// GetOrg returns the organization for an OUI.
func (r *Registry) GetOrg(oui uint64) (Org, error) {
	org, ok := r.orgs.get(oui)
	if !ok {
		return Org{}, fmt.Errorf("%w: oui %d", ErrOrgNotFound, oui)
	}
	return org, nil
}

// ListOrgs returns every organization.
func (r *Registry) ListOrgs() []Org {
	return r.orgs.list()
}

// CreateRoute stores a new route for an existing organization, assigning
// a fresh random ID and the initial nonce.
func (r *Registry) CreateRoute(oui uint64, rt route.Route) (route.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orgs.get(oui); !ok {
		return route.Route{}, fmt.Errorf("%w: oui %d", ErrOrgNotFound, oui)
	}

	rt.ID = uuid.NewString()
	rt.OUI = oui
	rt.Nonce = route.InitialNonce
	if err := r.routes.create(oui, rt); err != nil {
		return route.Route{}, err
	}

	r.hub.PublishRoute(notify.ActionAdd, rt.Clone())
	return rt, nil
}

// GetRoute returns the route with the given ID.
func (r *Registry) GetRoute(id string) (route.Route, error) {
	rt, ok := r.routes.get(id)
	if !ok {
		return route.Route{}, fmt.Errorf("%w: id %s", ErrRouteNotFound, id)
	}
	return rt, nil
}

// ListRoutes returns an organization's routes.
func (r *Registry) ListRoutes(oui uint64) ([]route.Route, error) {
	return r.routes.list(oui)
}

// UpdateRoute replaces a stored route wholesale. ID, OUI and NetID are
// immutable and kept from the stored row; the stored nonce advances. The
// caller-supplied nonce is not checked (last-write-wins).
func (r *Registry) UpdateRoute(rt route.Route) (route.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.routes.get(rt.ID)
	if !ok {
		return route.Route{}, fmt.Errorf("%w: id %s", ErrRouteNotFound, rt.ID)
	}
	rt.OUI = stored.OUI
	rt.NetID = stored.NetID

	updated, err := r.routes.update(rt)
	if err != nil {
		return route.Route{}, err
	}

	r.hub.PublishRoute(notify.ActionAdd, updated.Clone())
	return updated, nil
}

// DeleteRoute removes a route and purges every EUI pair and DevAddr range
// referencing it. Each purged binding emits its own removal event before
// the route's removal event.
func (r *Registry) DeleteRoute(id string) (route.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.routes.delete(id)
	if !ok {
		return route.Route{}, fmt.Errorf("%w: id %s", ErrRouteNotFound, id)
	}

	for _, pair := range r.euis.removeAllForRoute(id) {
		r.hub.PublishEuiPair(notify.ActionRemove, pair)
	}
	for _, dr := range r.devaddrs.removeAllForRoute(id) {
		r.hub.PublishDevaddrRange(notify.ActionRemove, dr)
	}
	r.hub.PublishRoute(notify.ActionRemove, rt.Clone())
	return rt, nil
}

// AddEuiPair inserts an EUI pair binding. It reports whether membership
// changed; re-adding an existing pair is a no-op and emits no event.
func (r *Registry) AddEuiPair(pair route.EuiPair) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.euis.add(pair) {
		return false
	}
	r.hub.PublishEuiPair(notify.ActionAdd, pair)
	return true
}

// RemoveEuiPair removes an EUI pair binding. Removing an absent pair
// reports false and emits no event.
func (r *Registry) RemoveEuiPair(pair route.EuiPair) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.euis.remove(pair) {
		return false
	}
	r.hub.PublishEuiPair(notify.ActionRemove, pair)
	return true
}

// ListEuiPairs returns the EUI pairs bound to a route.
func (r *Registry) ListEuiPairs(routeID string) []route.EuiPair {
	return r.euis.listForRoute(routeID)
}

// ClearEuiPairs removes every EUI pair bound to a route, emitting one
// removal event per purged pair.
func (r *Registry) ClearEuiPairs(routeID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.euis.removeAllForRoute(routeID)
	for _, pair := range removed {
		r.hub.PublishEuiPair(notify.ActionRemove, pair)
	}
	return len(removed)
}

// AddDevaddrRange inserts a DevAddr range binding after checking it lies
// fully inside the owning organization's allocated constraints. A range
// outside the allocation fails closed with ErrOutOfConstraint; nothing is
// stored and no event is emitted.
func (r *Registry) AddDevaddrRange(dr route.DevaddrRange) (bool, error) {
	if dr.Start > dr.End {
		return false, subnet.ErrBackwardsRange
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.routes.get(dr.RouteID)
	if !ok {
		return false, fmt.Errorf("%w: id %s", ErrRouteNotFound, dr.RouteID)
	}
	if err := r.checkWithinOrg(rt.OUI, dr.Constraint()); err != nil {
		return false, err
	}

	if !r.devaddrs.add(dr) {
		return false, nil
	}
	r.hub.PublishDevaddrRange(notify.ActionAdd, dr)
	return true, nil
}

// RemoveDevaddrRange removes a DevAddr range binding. Removing an absent
// range reports false and emits no event.
func (r *Registry) RemoveDevaddrRange(dr route.DevaddrRange) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.devaddrs.remove(dr) {
		return false
	}
	r.hub.PublishDevaddrRange(notify.ActionRemove, dr)
	return true
}

// ListDevaddrRanges returns the DevAddr ranges bound to a route.
func (r *Registry) ListDevaddrRanges(routeID string) []route.DevaddrRange {
	return r.devaddrs.listForRoute(routeID)
}

// ClearDevaddrRanges removes every DevAddr range bound to a route,
// emitting one removal event per purged range.
func (r *Registry) ClearDevaddrRanges(routeID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.devaddrs.removeAllForRoute(routeID)
	for _, dr := range removed {
		r.hub.PublishDevaddrRange(notify.ActionRemove, dr)
	}
	return len(removed)
}

// AddFilter inserts a session key filter. No constraint checking applies.
func (r *Registry) AddFilter(f route.SessionKeyFilter) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.filters.add(f) {
		return false
	}
	r.hub.PublishFilter(notify.ActionAdd, f)
	return true
}

// RemoveFilter removes a session key filter.
func (r *Registry) RemoveFilter(f route.SessionKeyFilter) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.filters.remove(f) {
		return false
	}
	r.hub.PublishFilter(notify.ActionRemove, f)
	return true
}

// ListFilters returns an organization's session key filters.
func (r *Registry) ListFilters(oui uint64) []route.SessionKeyFilter {
	return r.filters.list(oui)
}

// GetFilters returns the filters for one (organization, devaddr) pair.
func (r *Registry) GetFilters(oui uint64, devaddr lorafield.DevAddr) []route.SessionKeyFilter {
	return r.filters.get(oui, devaddr)
}

// WatchRoutes subscribes to route, EUI pair and DevAddr range changes.
// The subscriber observes only events published after this call.
func (r *Registry) WatchRoutes() *notify.Subscriber[notify.RouteEvent] {
	return r.hub.Routes().Subscribe()
}

// WatchFilters subscribes to session key filter changes.
func (r *Registry) WatchFilters() *notify.Subscriber[notify.FilterEvent] {
	return r.hub.Filters().Subscribe()
}

// checkWithinOrg verifies candidate lies fully inside at least one of the
// organization's allocated constraints. An organization without
// constraints is an invariant violation, distinct from a merely
// out-of-range candidate.
func (r *Registry) checkWithinOrg(oui uint64, candidate subnet.Constraint) error {
	constraints, ok := r.orgs.constraints(oui)
	if !ok {
		return fmt.Errorf("%w: oui %d", ErrOrgNotFound, oui)
	}
	if len(constraints) == 0 {
		return fmt.Errorf("%w: oui %d", ErrOrgHasNoConstraints, oui)
	}
	for _, c := range constraints {
		if c.Contains(candidate) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s not within oui %d allocation", ErrOutOfConstraint, candidate, oui)
}
