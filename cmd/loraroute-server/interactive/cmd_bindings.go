package interactive

import (
	"strconv"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/route"
	"github.com/loraroute/loraroute-go/pkg/server"
)

func (c *Console) cmdEui(args []string) {
	if len(args) == 0 {
		c.printf("Usage: eui add|remove|clear|list ...\n")
		return
	}

	switch args[0] {
	case "add", "remove":
		if len(args) < 4 {
			c.printf("Usage: eui %s <route-id> <app-eui> <dev-eui>\n", args[0])
			return
		}
		appEUI, err := lorafield.ParseEUI(args[2])
		if err != nil {
			c.printErr(err)
			return
		}
		devEUI, err := lorafield.ParseEUI(args[3])
		if err != nil {
			c.printErr(err)
			return
		}
		req := server.EuiPairReq{
			Auth: c.authEnvelope(),
			Pair: route.EuiPair{RouteID: args[1], AppEUI: appEUI, DevEUI: devEUI},
		}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig

		var changed bool
		if args[0] == "add" {
			changed, err = c.svc.AddEuiPair(req)
		} else {
			changed, err = c.svc.RemoveEuiPair(req)
		}
		if err != nil {
			c.printErr(err)
			return
		}
		if changed {
			c.printf("OK\n")
		} else {
			c.printf("No change\n")
		}

	case "clear":
		if len(args) < 2 {
			c.printf("Usage: eui clear <route-id>\n")
			return
		}
		req := server.ClearBindingsReq{Auth: c.authEnvelope(), RouteID: args[1]}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		removed, err := c.svc.ClearEuiPairs(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printf("Removed %d EUI pairs\n", removed)

	case "list":
		if len(args) < 2 {
			c.printf("Usage: eui list <route-id>\n")
			return
		}
		pairs := c.svc.ListEuiPairs(args[1])
		if len(pairs) == 0 {
			c.printf("No EUI pairs for route %s\n", args[1])
			return
		}
		for _, pair := range pairs {
			c.printf("app %s  dev %s\n", pair.AppEUI, pair.DevEUI)
		}

	default:
		c.printf("Unknown eui command: %s\n", args[0])
	}
}

func (c *Console) cmdDevaddr(args []string) {
	if len(args) == 0 {
		c.printf("Usage: devaddr add|remove|clear|list ...\n")
		return
	}

	switch args[0] {
	case "add", "remove":
		if len(args) < 4 {
			c.printf("Usage: devaddr %s <route-id> <start> <end>\n", args[0])
			return
		}
		start, err := lorafield.ParseDevAddr(args[2])
		if err != nil {
			c.printErr(err)
			return
		}
		end, err := lorafield.ParseDevAddr(args[3])
		if err != nil {
			c.printErr(err)
			return
		}
		req := server.DevaddrRangeReq{
			Auth:  c.authEnvelope(),
			Range: route.DevaddrRange{RouteID: args[1], Start: start, End: end},
		}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig

		var changed bool
		if args[0] == "add" {
			changed, err = c.svc.AddDevaddrRange(req)
		} else {
			changed, err = c.svc.RemoveDevaddrRange(req)
		}
		if err != nil {
			c.printErr(err)
			return
		}
		if changed {
			c.printf("OK\n")
		} else {
			c.printf("No change\n")
		}

	case "clear":
		if len(args) < 2 {
			c.printf("Usage: devaddr clear <route-id>\n")
			return
		}
		req := server.ClearBindingsReq{Auth: c.authEnvelope(), RouteID: args[1]}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig
		removed, err := c.svc.ClearDevaddrRanges(req)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printf("Removed %d DevAddr ranges\n", removed)

	case "list":
		if len(args) < 2 {
			c.printf("Usage: devaddr list <route-id>\n")
			return
		}
		ranges := c.svc.ListDevaddrRanges(args[1])
		if len(ranges) == 0 {
			c.printf("No DevAddr ranges for route %s\n", args[1])
			return
		}
		for _, dr := range ranges {
			c.printf("%s - %s  %v\n", dr.Start, dr.End, dr.Constraint().SubnetStrings())
		}

	default:
		c.printf("Unknown devaddr command: %s\n", args[0])
	}
}

func (c *Console) cmdSkf(args []string) {
	if len(args) == 0 {
		c.printf("Usage: skf add|remove|list ...\n")
		return
	}

	switch args[0] {
	case "add", "remove":
		if len(args) < 4 {
			c.printf("Usage: skf %s <oui> <devaddr> <session-key> [max-copies]\n", args[0])
			return
		}
		oui, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			c.printf("Invalid oui: %s\n", args[1])
			return
		}
		devaddr, err := lorafield.ParseDevAddr(args[2])
		if err != nil {
			c.printErr(err)
			return
		}
		filter := route.SessionKeyFilter{OUI: oui, Devaddr: devaddr, SessionKey: args[3]}
		if args[0] == "add" && len(args) > 4 {
			n, err := strconv.ParseUint(args[4], 10, 32)
			if err != nil {
				c.printf("Invalid max-copies: %s\n", args[4])
				return
			}
			filter.MaxCopies = uint32(n)
		}
		req := server.FilterReq{Auth: c.authEnvelope(), Filter: filter}
		sig, err := server.Sign(req, c.op.Key)
		if err != nil {
			c.printErr(err)
			return
		}
		req.Signature = sig

		var changed bool
		if args[0] == "add" {
			changed, err = c.svc.AddFilter(req)
		} else {
			changed, err = c.svc.RemoveFilter(req)
		}
		if err != nil {
			c.printErr(err)
			return
		}
		if changed {
			c.printf("OK\n")
		} else {
			c.printf("No change\n")
		}

	case "list":
		if len(args) < 2 {
			c.printf("Usage: skf list <oui>\n")
			return
		}
		oui, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			c.printf("Invalid oui: %s\n", args[1])
			return
		}
		filters := c.svc.ListFilters(oui)
		if len(filters) == 0 {
			c.printf("No filters for oui %d\n", oui)
			return
		}
		for _, f := range filters {
			c.printf("%s  key %s  max-copies %d\n", f.Devaddr, f.SessionKey, f.MaxCopies)
		}

	default:
		c.printf("Unknown skf command: %s\n", args[0])
	}
}
