// Package commands implements the loraroute-log subcommands.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/loraroute/loraroute-go/pkg/log"
)

func parseEntity(s string) (*log.Entity, error) {
	if s == "" {
		return nil, nil
	}
	for _, e := range []log.Entity{
		log.EntityOrg, log.EntityRoute, log.EntityEuiPair,
		log.EntityDevaddrRange, log.EntitySessionKeyFilter,
	} {
		if e.String() == s {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("unknown entity %q", s)
}

func parseAction(s string) (*log.Action, error) {
	if s == "" {
		return nil, nil
	}
	for _, a := range []log.Action{
		log.ActionCreate, log.ActionUpdate, log.ActionDelete,
		log.ActionAdd, log.ActionRemove,
	} {
		if a.String() == s {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("unknown action %q", s)
}

func parseOutcome(s string) (*log.Outcome, error) {
	if s == "" {
		return nil, nil
	}
	for _, o := range []log.Outcome{log.OutcomeAccepted, log.OutcomeDeclined} {
		if o.String() == s {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("unknown outcome %q", s)
}

// filterFlags registers the shared filter flags and returns a builder.
func filterFlags(fs *flag.FlagSet) func() (log.Filter, error) {
	entity := fs.String("entity", "", "Filter by entity (org, route, eui_pair, devaddr_range, session_key_filter)")
	action := fs.String("action", "", "Filter by action (create, update, delete, add, remove)")
	outcome := fs.String("outcome", "", "Filter by outcome (accepted, declined)")
	oui := fs.Uint64("oui", 0, "Filter by organization OUI")
	routeID := fs.String("route", "", "Filter by route ID")

	return func() (log.Filter, error) {
		var filter log.Filter
		var err error
		if filter.Entity, err = parseEntity(*entity); err != nil {
			return log.Filter{}, err
		}
		if filter.Action, err = parseAction(*action); err != nil {
			return log.Filter{}, err
		}
		if filter.Outcome, err = parseOutcome(*outcome); err != nil {
			return log.Filter{}, err
		}
		filter.OUI = *oui
		filter.RouteID = *routeID
		return filter, nil
	}
}

// View prints matching events in human-readable form.
func View(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `loraroute-log view - View events in human-readable format

Usage:
  loraroute-log view [flags] <events.cbor>

Flags:
`)
		fs.PrintDefaults()
	}
	buildFilter := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one log file")
	}
	filter, err := buildFilter()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(fs.Arg(0), filter)
	if err != nil {
		return err
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		formatEvent(w, event)
		count++
	}
	fmt.Fprintf(w, "\n%d events\n", count)
	return nil
}

func formatEvent(w io.Writer, event log.Event) {
	fmt.Fprintf(w, "%s  %-8s %-18s %-6s",
		event.Timestamp.Format(time.RFC3339),
		event.Outcome, event.Entity, event.Action)
	if event.OUI != 0 {
		fmt.Fprintf(w, "  oui=%d", event.OUI)
	}
	if event.RouteID != "" {
		fmt.Fprintf(w, "  route=%s", event.RouteID)
	}
	if event.Signer != "" {
		fmt.Fprintf(w, "  signer=%s", shortenKey(event.Signer))
	}
	if event.Detail != "" {
		fmt.Fprintf(w, "  (%s)", event.Detail)
	}
	fmt.Fprintln(w)
}

func shortenKey(key string) string {
	if len(key) <= 12 {
		return key
	}
	return key[:12] + "..."
}
