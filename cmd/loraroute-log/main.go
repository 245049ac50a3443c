// Command loraroute-log is a tool for viewing and analyzing registry
// audit event logs.
//
// Event logs are created by running loraroute-server with the -event-log
// flag.
//
// Usage:
//
//	loraroute-log <command> [flags] <events.cbor>
//
// Commands:
//
//	view     View events in human-readable format
//	export   Export events to JSONL
//	stats    Show statistics about the event log
//
// Examples:
//
//	# View all events
//	loraroute-log view events.cbor
//
//	# View only declined operations
//	loraroute-log view -outcome declined events.cbor
//
//	# View one organization's route changes
//	loraroute-log view -oui 7 -entity route events.cbor
//
//	# Export to JSONL
//	loraroute-log export events.cbor > events.jsonl
//
//	# Show statistics
//	loraroute-log stats events.cbor
package main

import (
	"fmt"
	"os"

	"github.com/loraroute/loraroute-go/cmd/loraroute-log/commands"
)

const usage = `loraroute-log - Registry Audit Log Analyzer

Usage:
  loraroute-log <command> [flags] <events.cbor>

Commands:
  view     View events in human-readable format
  export   Export events to JSONL
  stats    Show statistics about the event log

Use "loraroute-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "view":
		err = commands.View(args, os.Stdout)
	case "export":
		err = commands.Export(args, os.Stdout)
	case "stats":
		err = commands.Stats(args, os.Stdout)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
