package interactive

import (
	"strconv"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/registry"
	"github.com/loraroute/loraroute-go/pkg/server"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

func (c *Console) cmdOrg(args []string) {
	if len(args) == 0 {
		c.printf("Usage: org create-helium|create-roamer|grant|list|get ...\n")
		return
	}

	switch args[0] {
	case "create-helium":
		count := c.op.Devaddr
		if len(args) > 1 {
			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				c.printf("Invalid count: %s\n", args[1])
				return
			}
			count = uint32(n)
		}
		req := server.CreateHeliumOrgReq{
			Auth:         c.authEnvelope(),
			Owner:        c.op.Public,
			Payer:        c.op.Public,
			DevaddrCount: count,
		}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		org, err := c.svc.CreateHeliumOrg(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printOrg(org)

	case "create-roamer":
		if len(args) < 2 {
			c.printf("Usage: org create-roamer <netid>\n")
			return
		}
		netID, err := lorafield.ParseNetID(args[1])
		if err != nil {
			c.printErr(err)
			return
		}
		req := server.CreateRoamerOrgReq{
			Auth:  c.authEnvelope(),
			Owner: c.op.Public,
			Payer: c.op.Public,
			NetID: netID,
		}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		org, err := c.svc.CreateRoamerOrg(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printOrg(org)

	case "grant":
		if len(args) < 4 {
			c.printf("Usage: org grant <oui> <start> <end>\n")
			return
		}
		oui, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			c.printf("Invalid oui: %s\n", args[1])
			return
		}
		constraint, err := parseConstraint(args[2], args[3])
		if err != nil {
			c.printErr(err)
			return
		}
		req := server.GrantConstraintReq{
			Auth:       c.authEnvelope(),
			OUI:        oui,
			Constraint: constraint,
		}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		org, err := c.svc.GrantConstraint(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printOrg(org)

	case "list":
		orgs := c.svc.ListOrgs()
		if len(orgs) == 0 {
			c.printf("No organizations\n")
			return
		}
		for _, org := range orgs {
			c.printOrg(org)
		}

	case "get":
		if len(args) < 2 {
			c.printf("Usage: org get <oui>\n")
			return
		}
		oui, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			c.printf("Invalid oui: %s\n", args[1])
			return
		}
		org, err := c.svc.GetOrg(oui)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printOrg(org)

	default:
		c.printf("Unknown org command: %s\n", args[0])
	}
}

func (c *Console) printOrg(org registry.Org) {
	c.printf("OUI %d  owner %s\n", org.OUI, org.Owner)
	for _, constraint := range org.Constraints {
		c.printf("  %s  subnets %v\n", constraint, constraint.SubnetStrings())
	}
}

func parseConstraint(start, end string) (subnet.Constraint, error) {
	s, err := lorafield.ParseDevAddr(start)
	if err != nil {
		return subnet.Constraint{}, err
	}
	e, err := lorafield.ParseDevAddr(end)
	if err != nil {
		return subnet.Constraint{}, err
	}
	return subnet.NewConstraint(s, e)
}
