package registry

import (
	"slices"
	"sync"

	"github.com/loraroute/loraroute-go/pkg/route"
)

// euiPairs is the EUI pair binding set. Pairs are keyed by the full
// (route_id, app_eui, dev_eui) tuple; re-adding an existing pair is a
// no-op, not an error.
type euiPairs struct {
	mu  sync.RWMutex
	set map[route.EuiPair]struct{}
}

func newEuiPairs() *euiPairs {
	return &euiPairs{set: make(map[route.EuiPair]struct{})}
}

// add inserts the pair and reports whether membership changed.
func (c *euiPairs) add(p route.EuiPair) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.set[p]; ok {
		return false
	}
	c.set[p] = struct{}{}
	return true
}

// remove deletes the pair and reports whether membership changed.
func (c *euiPairs) remove(p route.EuiPair) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.set[p]; !ok {
		return false
	}
	delete(c.set, p)
	return true
}

// listForRoute returns the pairs bound to a route, ordered for stable
// listings. The scan is O(set size); see the package doc for why no
// per-route index is kept.
func (c *euiPairs) listForRoute(routeID string) []route.EuiPair {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []route.EuiPair
	for p := range c.set {
		if p.RouteID == routeID {
			out = append(out, p)
		}
	}
	sortEuiPairs(out)
	return out
}

// removeAllForRoute purges every pair referencing the route, returning the
// removed pairs so the facade can emit one removal event each.
func (c *euiPairs) removeAllForRoute(routeID string) []route.EuiPair {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []route.EuiPair
	for p := range c.set {
		if p.RouteID == routeID {
			removed = append(removed, p)
			delete(c.set, p)
		}
	}
	sortEuiPairs(removed)
	return removed
}

func sortEuiPairs(pairs []route.EuiPair) {
	slices.SortFunc(pairs, func(a, b route.EuiPair) int {
		if a.AppEUI != b.AppEUI {
			if a.AppEUI < b.AppEUI {
				return -1
			}
			return 1
		}
		if a.DevEUI != b.DevEUI {
			if a.DevEUI < b.DevEUI {
				return -1
			}
			return 1
		}
		return 0
	})
}

// devaddrRanges is the DevAddr range binding set, with the same ownership
// and membership semantics as euiPairs.
type devaddrRanges struct {
	mu  sync.RWMutex
	set map[route.DevaddrRange]struct{}
}

func newDevaddrRanges() *devaddrRanges {
	return &devaddrRanges{set: make(map[route.DevaddrRange]struct{})}
}

func (c *devaddrRanges) add(d route.DevaddrRange) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.set[d]; ok {
		return false
	}
	c.set[d] = struct{}{}
	return true
}

func (c *devaddrRanges) remove(d route.DevaddrRange) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.set[d]; !ok {
		return false
	}
	delete(c.set, d)
	return true
}

func (c *devaddrRanges) listForRoute(routeID string) []route.DevaddrRange {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []route.DevaddrRange
	for d := range c.set {
		if d.RouteID == routeID {
			out = append(out, d)
		}
	}
	sortDevaddrRanges(out)
	return out
}

func (c *devaddrRanges) removeAllForRoute(routeID string) []route.DevaddrRange {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []route.DevaddrRange
	for d := range c.set {
		if d.RouteID == routeID {
			removed = append(removed, d)
			delete(c.set, d)
		}
	}
	sortDevaddrRanges(removed)
	return removed
}

func sortDevaddrRanges(ranges []route.DevaddrRange) {
	slices.SortFunc(ranges, func(a, b route.DevaddrRange) int {
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}
			return 1
		}
		if a.End != b.End {
			if a.End < b.End {
				return -1
			}
			return 1
		}
		return 0
	})
}
