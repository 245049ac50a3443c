package registry

import (
	"slices"
	"strings"
	"sync"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/route"
)

// filterKey identifies a session key filter. MaxCopies is settings, not
// identity; two filters differing only in MaxCopies are the same filter.
type filterKey struct {
	oui        uint64
	devaddr    lorafield.DevAddr
	sessionKey string
}

func keyOf(f route.SessionKeyFilter) filterKey {
	return filterKey{oui: f.OUI, devaddr: f.Devaddr, sessionKey: f.SessionKey}
}

// sessionKeyFilters is the session key filter set. No constraint checking
// applies here; a filter's devaddr need not lie inside the organization's
// allocation.
type sessionKeyFilters struct {
	mu  sync.RWMutex
	set map[filterKey]route.SessionKeyFilter
}

func newSessionKeyFilters() *sessionKeyFilters {
	return &sessionKeyFilters{set: make(map[filterKey]route.SessionKeyFilter)}
}

// add inserts the filter and reports whether membership changed.
func (c *sessionKeyFilters) add(f route.SessionKeyFilter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := keyOf(f)
	if _, ok := c.set[key]; ok {
		return false
	}
	c.set[key] = f
	return true
}

// remove deletes the filter and reports whether membership changed.
func (c *sessionKeyFilters) remove(f route.SessionKeyFilter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := keyOf(f)
	if _, ok := c.set[key]; !ok {
		return false
	}
	delete(c.set, key)
	return true
}

// list returns all filters for an organization, ordered for stable
// listings.
func (c *sessionKeyFilters) list(oui uint64) []route.SessionKeyFilter {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []route.SessionKeyFilter
	for _, f := range c.set {
		if f.OUI == oui {
			out = append(out, f)
		}
	}
	sortFilters(out)
	return out
}

// get returns the filters for one (organization, devaddr) pair.
func (c *sessionKeyFilters) get(oui uint64, devaddr lorafield.DevAddr) []route.SessionKeyFilter {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []route.SessionKeyFilter
	for _, f := range c.set {
		if f.OUI == oui && f.Devaddr == devaddr {
			out = append(out, f)
		}
	}
	sortFilters(out)
	return out
}

func sortFilters(filters []route.SessionKeyFilter) {
	slices.SortFunc(filters, func(a, b route.SessionKeyFilter) int {
		if a.Devaddr != b.Devaddr {
			if a.Devaddr < b.Devaddr {
				return -1
			}
			return 1
		}
		return strings.Compare(a.SessionKey, b.SessionKey)
	})
}
