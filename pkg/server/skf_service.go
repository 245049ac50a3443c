package server

import (
	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/log"
	"github.com/loraroute/loraroute-go/pkg/notify"
	"github.com/loraroute/loraroute-go/pkg/route"
)

// AddFilter inserts a session key filter for the signer's organization.
func (c *Console) AddFilter(req FilterReq) (bool, error) {
	if err := c.verify(req); err != nil {
		return false, err
	}
	if err := c.authorizeOrg(req.Filter.OUI, req.Signer); err != nil {
		c.logEvent(log.EntitySessionKeyFilter, log.ActionAdd, req.Signer, req.Filter.OUI, "", err)
		return false, err
	}

	added := c.registry.AddFilter(req.Filter)
	c.logEvent(log.EntitySessionKeyFilter, log.ActionAdd, req.Signer, req.Filter.OUI, "", nil)
	return added, nil
}

// RemoveFilter removes a session key filter.
func (c *Console) RemoveFilter(req FilterReq) (bool, error) {
	if err := c.verify(req); err != nil {
		return false, err
	}
	if err := c.authorizeOrg(req.Filter.OUI, req.Signer); err != nil {
		c.logEvent(log.EntitySessionKeyFilter, log.ActionRemove, req.Signer, req.Filter.OUI, "", err)
		return false, err
	}

	removed := c.registry.RemoveFilter(req.Filter)
	c.logEvent(log.EntitySessionKeyFilter, log.ActionRemove, req.Signer, req.Filter.OUI, "", nil)
	return removed, nil
}

// ListFilters returns an organization's session key filters.
func (c *Console) ListFilters(oui uint64) []route.SessionKeyFilter {
	return c.registry.ListFilters(oui)
}

// GetFilters returns the filters for one device address.
func (c *Console) GetFilters(oui uint64, devaddr lorafield.DevAddr) []route.SessionKeyFilter {
	return c.registry.GetFilters(oui, devaddr)
}

// StreamFilters subscribes to session key filter changes.
func (c *Console) StreamFilters() *notify.Subscriber[notify.FilterEvent] {
	return c.registry.WatchFilters()
}
