package server

import (
	"github.com/loraroute/loraroute-go/pkg/log"
	"github.com/loraroute/loraroute-go/pkg/notify"
	"github.com/loraroute/loraroute-go/pkg/route"
)

// CreateRoute stores a new route for the request's organization. The
// signer must own that organization or be an admin.
func (c *Console) CreateRoute(req RouteReq) (route.Route, error) {
	if err := c.verify(req); err != nil {
		return route.Route{}, err
	}
	if err := c.authorizeOrg(req.OUI, req.Signer); err != nil {
		c.logEvent(log.EntityRoute, log.ActionCreate, req.Signer, req.OUI, "", err)
		return route.Route{}, err
	}

	rt, err := c.registry.CreateRoute(req.OUI, req.Route)
	c.logEvent(log.EntityRoute, log.ActionCreate, req.Signer, req.OUI, rt.ID, err)
	return rt, err
}

// GetRoute returns one route.
func (c *Console) GetRoute(id string) (route.Route, error) {
	return c.registry.GetRoute(id)
}

// ListRoutes returns an organization's routes.
func (c *Console) ListRoutes(oui uint64) ([]route.Route, error) {
	return c.registry.ListRoutes(oui)
}

// UpdateRoute replaces a stored route wholesale.
func (c *Console) UpdateRoute(req RouteReq) (route.Route, error) {
	if err := c.verify(req); err != nil {
		return route.Route{}, err
	}
	if err := c.authorizeRoute(req.Route.ID, req.Signer); err != nil {
		c.logEvent(log.EntityRoute, log.ActionUpdate, req.Signer, req.OUI, req.Route.ID, err)
		return route.Route{}, err
	}

	rt, err := c.registry.UpdateRoute(req.Route)
	c.logEvent(log.EntityRoute, log.ActionUpdate, req.Signer, rt.OUI, req.Route.ID, err)
	return rt, err
}

// DeleteRoute removes a route and all bindings referencing it.
func (c *Console) DeleteRoute(req DeleteRouteReq) (route.Route, error) {
	if err := c.verify(req); err != nil {
		return route.Route{}, err
	}
	if err := c.authorizeRoute(req.ID, req.Signer); err != nil {
		c.logEvent(log.EntityRoute, log.ActionDelete, req.Signer, 0, req.ID, err)
		return route.Route{}, err
	}

	rt, err := c.registry.DeleteRoute(req.ID)
	c.logEvent(log.EntityRoute, log.ActionDelete, req.Signer, rt.OUI, req.ID, err)
	return rt, err
}

// AddEuiPair binds an EUI pair to a route. It reports whether membership
// changed.
func (c *Console) AddEuiPair(req EuiPairReq) (bool, error) {
	if err := c.verify(req); err != nil {
		return false, err
	}
	if err := c.authorizeRoute(req.Pair.RouteID, req.Signer); err != nil {
		c.logEvent(log.EntityEuiPair, log.ActionAdd, req.Signer, 0, req.Pair.RouteID, err)
		return false, err
	}

	added := c.registry.AddEuiPair(req.Pair)
	c.logEvent(log.EntityEuiPair, log.ActionAdd, req.Signer, 0, req.Pair.RouteID, nil)
	return added, nil
}

// RemoveEuiPair removes an EUI pair binding.
func (c *Console) RemoveEuiPair(req EuiPairReq) (bool, error) {
	if err := c.verify(req); err != nil {
		return false, err
	}
	if err := c.authorizeRoute(req.Pair.RouteID, req.Signer); err != nil {
		c.logEvent(log.EntityEuiPair, log.ActionRemove, req.Signer, 0, req.Pair.RouteID, err)
		return false, err
	}

	removed := c.registry.RemoveEuiPair(req.Pair)
	c.logEvent(log.EntityEuiPair, log.ActionRemove, req.Signer, 0, req.Pair.RouteID, nil)
	return removed, nil
}

// ClearEuiPairs removes every EUI pair bound to a route and returns the
// number removed.
func (c *Console) ClearEuiPairs(req ClearBindingsReq) (int, error) {
	if err := c.verify(req); err != nil {
		return 0, err
	}
	if err := c.authorizeRoute(req.RouteID, req.Signer); err != nil {
		c.logEvent(log.EntityEuiPair, log.ActionRemove, req.Signer, 0, req.RouteID, err)
		return 0, err
	}

	removed := c.registry.ClearEuiPairs(req.RouteID)
	c.logEvent(log.EntityEuiPair, log.ActionRemove, req.Signer, 0, req.RouteID, nil)
	return removed, nil
}

// ListEuiPairs returns a route's EUI pair bindings.
func (c *Console) ListEuiPairs(routeID string) []route.EuiPair {
	return c.registry.ListEuiPairs(routeID)
}

// AddDevaddrRange binds a DevAddr range to a route after the registry
// checks it against the owning organization's allocation.
func (c *Console) AddDevaddrRange(req DevaddrRangeReq) (bool, error) {
	if err := c.verify(req); err != nil {
		return false, err
	}
	if err := c.authorizeRoute(req.Range.RouteID, req.Signer); err != nil {
		c.logEvent(log.EntityDevaddrRange, log.ActionAdd, req.Signer, 0, req.Range.RouteID, err)
		return false, err
	}

	added, err := c.registry.AddDevaddrRange(req.Range)
	c.logEvent(log.EntityDevaddrRange, log.ActionAdd, req.Signer, 0, req.Range.RouteID, err)
	return added, err
}

// RemoveDevaddrRange removes a DevAddr range binding.
func (c *Console) RemoveDevaddrRange(req DevaddrRangeReq) (bool, error) {
	if err := c.verify(req); err != nil {
		return false, err
	}
	if err := c.authorizeRoute(req.Range.RouteID, req.Signer); err != nil {
		c.logEvent(log.EntityDevaddrRange, log.ActionRemove, req.Signer, 0, req.Range.RouteID, err)
		return false, err
	}

	removed := c.registry.RemoveDevaddrRange(req.Range)
	c.logEvent(log.EntityDevaddrRange, log.ActionRemove, req.Signer, 0, req.Range.RouteID, nil)
	return removed, nil
}

// ClearDevaddrRanges removes every DevAddr range bound to a route and
// returns the number removed.
func (c *Console) ClearDevaddrRanges(req ClearBindingsReq) (int, error) {
	if err := c.verify(req); err != nil {
		return 0, err
	}
	if err := c.authorizeRoute(req.RouteID, req.Signer); err != nil {
		c.logEvent(log.EntityDevaddrRange, log.ActionRemove, req.Signer, 0, req.RouteID, err)
		return 0, err
	}

	removed := c.registry.ClearDevaddrRanges(req.RouteID)
	c.logEvent(log.EntityDevaddrRange, log.ActionRemove, req.Signer, 0, req.RouteID, nil)
	return removed, nil
}

// ListDevaddrRanges returns a route's DevAddr range bindings.
func (c *Console) ListDevaddrRanges(routeID string) []route.DevaddrRange {
	return c.registry.ListDevaddrRanges(routeID)
}

// StreamRoutes subscribes to route, EUI pair and DevAddr range changes.
func (c *Console) StreamRoutes() *notify.Subscriber[notify.RouteEvent] {
	return c.registry.WatchRoutes()
}
