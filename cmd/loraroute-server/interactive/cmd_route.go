package interactive

import (
	"strconv"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/route"
	"github.com/loraroute/loraroute-go/pkg/server"
)

func (c *Console) cmdRoute(args []string) {
	if len(args) == 0 {
		c.printf("Usage: route create|list|get|activate|deactivate|delete ...\n")
		return
	}

	switch args[0] {
	case "create":
		if len(args) < 5 {
			c.printf("Usage: route create <oui> <netid> <host> <port> [max-copies]\n")
			return
		}
		oui, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			c.printf("Invalid oui: %s\n", args[1])
			return
		}
		netID, err := lorafield.ParseNetID(args[2])
		if err != nil {
			c.printErr(err)
			return
		}
		port, err := strconv.ParseUint(args[4], 10, 32)
		if err != nil {
			c.printf("Invalid port: %s\n", args[4])
			return
		}
		maxCopies := uint64(1)
		if len(args) > 5 {
			maxCopies, err = strconv.ParseUint(args[5], 10, 32)
			if err != nil {
				c.printf("Invalid max-copies: %s\n", args[5])
				return
			}
		}
		req := server.RouteReq{
			Auth: c.authEnvelope(),
			OUI:  oui,
			Route: route.Route{
				NetID:     netID,
				MaxCopies: uint32(maxCopies),
				Active:    true,
				Server:    route.Server{Host: args[3], Port: uint32(port)},
			},
		}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		rt, err := c.svc.CreateRoute(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printRoute(rt)

	case "list":
		if len(args) < 2 {
			c.printf("Usage: route list <oui>\n")
			return
		}
		oui, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			c.printf("Invalid oui: %s\n", args[1])
			return
		}
		routes, err := c.svc.ListRoutes(oui)
		if err != nil {
			c.printErr(err)
			return
		}
		if len(routes) == 0 {
			c.printf("No routes for oui %d\n", oui)
			return
		}
		for _, rt := range routes {
			c.printRoute(rt)
		}

	case "get":
		if len(args) < 2 {
			c.printf("Usage: route get <id>\n")
			return
		}
		rt, err := c.svc.GetRoute(args[1])
		if err != nil {
			c.printErr(err)
			return
		}
		c.printRoute(rt)

	case "activate", "deactivate":
		if len(args) < 2 {
			c.printf("Usage: route %s <id>\n", args[0])
			return
		}
		rt, err := c.svc.GetRoute(args[1])
		if err != nil {
			c.printErr(err)
			return
		}
		rt.Active = args[0] == "activate"
		req := server.RouteReq{Auth: c.authEnvelope(), OUI: rt.OUI, Route: rt}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		updated, err := c.svc.UpdateRoute(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printRoute(updated)

	case "delete":
		if len(args) < 2 {
			c.printf("Usage: route delete <id>\n")
			return
		}
		req := server.DeleteRouteReq{Auth: c.authEnvelope(), ID: args[1]}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		rt, err := c.svc.DeleteRoute(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printf("Deleted route %s\n", rt.ID)

	default:
		c.printf("Unknown route command: %s\n", args[0])
	}
}

func (c *Console) printRoute(rt route.Route) {
	state := "inactive"
	if rt.Active {
		state = "active"
	}
	c.printf("%s  oui %d  net %s  %s:%d  max-copies %d  nonce %d  %s\n",
		rt.ID, rt.OUI, rt.NetID, rt.Server.Host, rt.Server.Port, rt.MaxCopies, rt.Nonce, state)
}
