package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/loraroute/loraroute-go/pkg/log"
)

// jsonEvent is the JSONL export shape, using names instead of the
// compact integer-keyed CBOR encoding.
type jsonEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	OUI       uint64    `json:"oui,omitempty"`
	RouteID   string    `json:"route_id,omitempty"`
	Signer    string    `json:"signer,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Export writes matching events as one JSON object per line.
func Export(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `loraroute-log export - Export events to JSONL

Usage:
  loraroute-log export [flags] <events.cbor>

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

	enc := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		out := jsonEvent{
			Timestamp: event.Timestamp,
			Entity:    event.Entity.String(),
			Action:    event.Action.String(),
			Outcome:   event.Outcome.String(),
			OUI:       event.OUI,
			RouteID:   event.RouteID,
			Signer:    event.Signer,
			Detail:    event.Detail,
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
}
