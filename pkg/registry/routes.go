package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/loraroute/loraroute-go/pkg/route"
)

// routes is the route collection, keyed by owning OUI the way the
// address-space accounting thinks about routes. Lookups by route ID scan;
// collections stay small enough (hundreds of rows) that an extra index is
// not worth carrying.
type routes struct {
	mu    sync.RWMutex
	byOUI map[uint64][]route.Route
}

func newRoutes() *routes {
	return &routes{byOUI: make(map[uint64][]route.Route)}
}

// ensureOrg reserves an empty route list for a freshly created
// organization so listing it succeeds before any route exists.
func (c *routes) ensureOrg(oui uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byOUI[oui]; !ok {
		c.byOUI[oui] = nil
	}
}

func (c *routes) create(oui uint64, r route.Route) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byOUI[oui]; !ok {
		return fmt.Errorf("%w: oui %d", ErrOrgNotFound, oui)
	}
	c.byOUI[oui] = append(c.byOUI[oui], r.Clone())
	return nil
}

func (c *routes) get(id string) (route.Route, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rs := range c.byOUI {
		for _, r := range rs {
			if r.ID == id {
				return r.Clone(), true
			}
		}
	}
	return route.Route{}, false
}

func (c *routes) list(oui uint64) ([]route.Route, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rs, ok := c.byOUI[oui]
	if !ok {
		return nil, fmt.Errorf("%w: oui %d", ErrOrgNotFound, oui)
	}
	out := make([]route.Route, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Clone())
	}
	slices.SortFunc(out, func(a, b route.Route) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// update replaces the stored row wholesale (last-write-wins; the caller's
// nonce is not checked) and advances the stored nonce.
func (c *routes) update(r route.Route) (route.Route, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rs := c.byOUI[r.OUI]
	for i, old := range rs {
		if old.ID == r.ID {
			next := r.Clone()
			next.Nonce = old.Nonce + 1
			rs[i] = next
			return next.Clone(), nil
		}
	}
	return route.Route{}, fmt.Errorf("%w: id %s", ErrRouteNotFound, r.ID)
}

func (c *routes) delete(id string) (route.Route, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for oui, rs := range c.byOUI {
		for i, r := range rs {
			if r.ID == id {
				c.byOUI[oui] = slices.Delete(rs, i, i+1)
				return r, true
			}
		}
	}
	return route.Route{}, false
}
