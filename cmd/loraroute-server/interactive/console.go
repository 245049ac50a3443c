// Package interactive provides the operator command-line console for
// loraroute-server.
package interactive

import (
	"crypto/ed25519"
	"fmt"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/server"
)

// Operator is the identity the console signs requests with.
type Operator struct {
	Key    ed25519.PrivateKey
	Public auth.PublicKey
	// Devaddr is the default address count for new Helium organizations.
	Devaddr uint32
}

// Console handles interactive mode for loraroute-server.
type Console struct {
	svc *server.Console
	op  Operator
	rl  *readline.Instance
}

// New creates the operator console.
func New(svc *server.Console, op Operator) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "loraroute> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{svc: svc, op: op, rl: rl}, nil
}

// Run starts the interactive command loop. It returns on exit or EOF.
func (c *Console) Run() {
	defer c.rl.Close()

	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "org":
			c.cmdOrg(args)

		case "route":
			c.cmdRoute(args)

		case "eui":
			c.cmdEui(args)

		case "devaddr":
			c.cmdDevaddr(args)

		case "skf":
			c.cmdSkf(args)

		case "subnet":
			c.cmdSubnet(args)

		case "watch":
			c.cmdWatch(args)

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

// authEnvelope builds the Auth stamp for a request signed by the operator.
func (c *Console) authEnvelope() server.Auth {
	return server.Auth{Signer: c.op.Public, Timestamp: time.Now()}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.rl.Stdout(), format, args...)
}

func (c *Console) printErr(err error) {
	fmt.Fprintf(c.rl.Stderr(), "Error: %v\n", err)
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
LoRa Routing Registry Commands:
  Organizations:
    org create-helium [count]          - Create org with a Helium devaddr block
    org create-roamer <netid>          - Create org owning a full NetID range
    org grant <oui> <start> <end>      - Grant an extra devaddr block
    org list                           - List organizations
    org get <oui>                      - Show one organization

  Routes:
    route create <oui> <netid> <host> <port> [max-copies]
    route list <oui>                   - List an org's routes
    route get <id>                     - Show one route
    route activate <id> / deactivate <id>
    route delete <id>                  - Delete a route and its bindings

  Bindings:
    eui add <route-id> <app-eui> <dev-eui>
    eui remove <route-id> <app-eui> <dev-eui>
    eui list <route-id> / clear <route-id>
    devaddr add <route-id> <start> <end>
    devaddr remove <route-id> <start> <end>
    devaddr list <route-id> / clear <route-id>

  Session key filters:
    skf add <oui> <devaddr> <session-key> [max-copies]
    skf remove <oui> <devaddr> <session-key>
    skf list <oui>

  Tools:
    subnet <start> <end>               - Show CIDR decomposition of a range
    watch routes|filters [seconds]     - Print change events as they happen

  General:
    help                               - Show this help
    quit                               - Exit`)
}
