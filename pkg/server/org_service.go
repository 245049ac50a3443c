package server

import (
	"github.com/loraroute/loraroute-go/pkg/log"
	"github.com/loraroute/loraroute-go/pkg/registry"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

// CreateHeliumOrg creates an organization with an automatic Helium
// address allocation. Admin keys only.
func (c *Console) CreateHeliumOrg(req CreateHeliumOrgReq) (registry.Org, error) {
	org, err := c.createOrg(req, func() (registry.Org, error) {
		return c.registry.CreateHeliumOrg(req.Owner, req.Payer, req.DevaddrCount)
	})
	return org, err
}

// CreateRoamerOrg creates an organization granted the full range of its
// own NetID. Admin keys only.
func (c *Console) CreateRoamerOrg(req CreateRoamerOrgReq) (registry.Org, error) {
	org, err := c.createOrg(req, func() (registry.Org, error) {
		return c.registry.CreateRoamerOrg(req.Owner, req.Payer, req.NetID)
	})
	return org, err
}

func (c *Console) createOrg(req signedRequest, create func() (registry.Org, error)) (registry.Org, error) {
	signer := req.authData().Signer
	if err := c.verify(req); err != nil {
		return registry.Org{}, err
	}
	if err := c.requireAdmin(signer); err != nil {
		c.logEvent(log.EntityOrg, log.ActionCreate, signer, 0, "", err)
		return registry.Org{}, err
	}

	org, err := create()
	c.logEvent(log.EntityOrg, log.ActionCreate, signer, org.OUI, "", err)
	return org, err
}

// GrantConstraint appends an address block to an organization. Admin
// keys only.
func (c *Console) GrantConstraint(req GrantConstraintReq) (registry.Org, error) {
	if err := c.verify(req); err != nil {
		return registry.Org{}, err
	}
	if err := c.requireAdmin(req.Signer); err != nil {
		c.logEvent(log.EntityOrg, log.ActionUpdate, req.Signer, req.OUI, "", err)
		return registry.Org{}, err
	}

	org, err := c.registry.GrantConstraint(req.OUI, req.Constraint)
	c.logEvent(log.EntityOrg, log.ActionUpdate, req.Signer, req.OUI, "", err)
	return org, err
}

// GetOrg returns one organization.
func (c *Console) GetOrg(oui uint64) (registry.Org, error) {
	return c.registry.GetOrg(oui)
}

// ListOrgs returns every organization.
func (c *Console) ListOrgs() []registry.Org {
	return c.registry.ListOrgs()
}

// Subnets returns the CIDR-style decomposition of an organization's
// allocated address blocks, one list entry per constraint.
func (c *Console) Subnets(oui uint64) ([][]subnet.Subnet, error) {
	org, err := c.registry.GetOrg(oui)
	if err != nil {
		return nil, err
	}
	decomposed := make([][]subnet.Subnet, 0, len(org.Constraints))
	for _, constraint := range org.Constraints {
		decomposed = append(decomposed, constraint.Subnets())
	}
	return decomposed, nil
}
