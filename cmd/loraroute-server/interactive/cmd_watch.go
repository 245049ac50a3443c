package interactive

import (
	"strconv"
	"time"

	"github.com/loraroute/loraroute-go/pkg/notify"
)

const defaultWatchDuration = 30 * time.Second

func (c *Console) cmdSubnet(args []string) {
	if len(args) < 2 {
		c.printf("Usage: subnet <start> <end>\n")
		return
	}
	constraint, err := parseConstraint(args[0], args[1])
	if err != nil {
		c.printErr(err)
		return
	}
	for _, s := range constraint.SubnetStrings() {
		c.printf("%s\n", s)
	}
}

// cmdWatch prints change events for a fixed duration, then detaches.
func (c *Console) cmdWatch(args []string) {
	if len(args) == 0 {
		c.printf("Usage: watch routes|filters [seconds]\n")
		return
	}

	duration := defaultWatchDuration
	if len(args) > 1 {
		secs, err := strconv.Atoi(args[1])
		if err != nil || secs <= 0 {
			c.printf("Invalid duration: %s\n", args[1])
			return
		}
		duration = time.Duration(secs) * time.Second
	}
	deadline := time.After(duration)

	switch args[0] {
	case "routes":
		sub := c.svc.StreamRoutes()
		defer sub.Close()
		c.printf("Watching route changes for %s...\n", duration)
		for {
			select {
			case ev := <-sub.Events():
				c.printRouteEvent(ev)
			case <-deadline:
				c.printf("Watch finished (%d events dropped)\n", sub.Lagged())
				return
			}
		}

	case "filters":
		sub := c.svc.StreamFilters()
		defer sub.Close()
		c.printf("Watching filter changes for %s...\n", duration)
		for {
			select {
			case ev := <-sub.Events():
				c.printf("%s  oui %d  %s  key %s\n",
					ev.Action, ev.Filter.OUI, ev.Filter.Devaddr, ev.Filter.SessionKey)
			case <-deadline:
				c.printf("Watch finished (%d events dropped)\n", sub.Lagged())
				return
			}
		}

	default:
		c.printf("Unknown watch target: %s\n", args[0])
	}
}

func (c *Console) printRouteEvent(ev notify.RouteEvent) {
	switch {
	case ev.Route != nil:
		c.printf("%s  route %s  oui %d\n", ev.Action, ev.Route.ID, ev.Route.OUI)
	case ev.EuiPair != nil:
		c.printf("%s  eui %s/%s  route %s\n",
			ev.Action, ev.EuiPair.AppEUI, ev.EuiPair.DevEUI, ev.EuiPair.RouteID)
	case ev.DevaddrRange != nil:
		c.printf("%s  devaddr %s-%s  route %s\n",
			ev.Action, ev.DevaddrRange.Start, ev.DevaddrRange.End, ev.DevaddrRange.RouteID)
	}
}
