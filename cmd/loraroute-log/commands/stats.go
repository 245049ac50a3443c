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

// Stats summarizes an event log: totals per entity, per action and per
// outcome, plus the covered time span.
func Stats(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `loraroute-log stats - Show statistics about the event log

Usage:
  loraroute-log stats <events.cbor>
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one log file")
	}

	reader, err := log.NewReader(fs.Arg(0))
	if err != nil {
		return err
	}
	defer reader.Close()

	var (
		total    int
		declined int
		first    time.Time
		last     time.Time
		byEntity = make(map[string]int)
		byAction = make(map[string]int)
		bySigner = make(map[string]int)
	)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if total == 0 || event.Timestamp.Before(first) {
			first = event.Timestamp
		}
		if event.Timestamp.After(last) {
			last = event.Timestamp
		}
		total++
		if event.Outcome == log.OutcomeDeclined {
			declined++
		}
		byEntity[event.Entity.String()]++
		byAction[event.Action.String()]++
		if event.Signer != "" {
			bySigner[event.Signer]++
		}
	}

	fmt.Fprintf(w, "Events:   %d (%d declined)\n", total, declined)
	if total > 0 {
		fmt.Fprintf(w, "Span:     %s to %s\n",
			first.Format(time.RFC3339), last.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Signers:  %d\n", len(bySigner))
	fmt.Fprintln(w, "By entity:")
	for _, name := range []string{"org", "route", "eui_pair", "devaddr_range", "session_key_filter"} {
		if n := byEntity[name]; n > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", name, n)
		}
	}
	fmt.Fprintln(w, "By action:")
	for _, name := range []string{"create", "update", "delete", "add", "remove"} {
		if n := byAction[name]; n > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", name, n)
		}
	}
	return nil
}
