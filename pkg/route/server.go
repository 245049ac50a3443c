package route

import (
	"errors"
	"fmt"
	"maps"
)

// Protocol mutation errors.
var (
	ErrNoProtocol       = errors.New("server has no protocol to update")
	ErrProtocolMismatch = errors.New("protocol mismatch")
)

// Port is a forwarding destination port.
type Port = uint32

// GwmpMap maps regions to GWMP forwarding ports.
type GwmpMap map[Region]Port

// ProtocolType tags the protocol variant a server speaks.
type ProtocolType uint8

const (
	// ProtocolGwmp is the gateway message protocol.
	ProtocolGwmp ProtocolType = iota
	// ProtocolHTTP is HTTP roaming.
	ProtocolHTTP
	// ProtocolPacketRouter is the Helium packet router.
	ProtocolPacketRouter
)

// String returns the protocol tag in its wire spelling.
func (t ProtocolType) String() string {
	switch t {
	case ProtocolGwmp:
		return "gwmp"
	case ProtocolHTTP:
		return "http"
	case ProtocolPacketRouter:
		return "packet_router"
	default:
		return "unknown"
	}
}

// MarshalText renders the protocol tag.
func (t ProtocolType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a protocol tag.
func (t *ProtocolType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "gwmp":
		*t = ProtocolGwmp
	case "http":
		*t = ProtocolHTTP
	case "packet_router":
		*t = ProtocolPacketRouter
	default:
		return fmt.Errorf("unknown protocol type %q", text)
	}
	return nil
}

// FlowType selects synchronous or asynchronous HTTP roaming.
type FlowType uint8

const (
	// FlowSync waits for the roaming partner's response inline.
	FlowSync FlowType = iota
	// FlowAsync acknowledges immediately and delivers out of band.
	FlowAsync
)

// String returns the flow type in its wire spelling.
func (f FlowType) String() string {
	if f == FlowAsync {
		return "async"
	}
	return "sync"
}

// MarshalText renders the flow type.
func (f FlowType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a flow type.
func (f *FlowType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sync":
		*f = FlowSync
	case "async":
		*f = FlowAsync
	default:
		return fmt.Errorf("unknown flow type %q", text)
	}
	return nil
}

// Gwmp holds GWMP protocol configuration: one forwarding port per region.
type Gwmp struct {
	Mapping GwmpMap `json:"mapping"`
}

// HTTPRoaming holds HTTP roaming protocol configuration.
type HTTPRoaming struct {
	FlowType      FlowType `json:"flow_type"`
	DedupeTimeout uint32   `json:"dedupe_timeout"`
	Path          string   `json:"path"`
	AuthHeader    string   `json:"auth_header,omitempty"`
}

// Protocol is the tagged union of server protocol variants. Exactly the
// field matching Type is meaningful; the packet router variant carries no
// configuration.
type Protocol struct {
	Type ProtocolType `json:"type"`
	Gwmp *Gwmp        `json:"gwmp,omitempty"`
	HTTP *HTTPRoaming `json:"http,omitempty"`
}

// NewGwmp builds a GWMP protocol with an initial region mapping.
func NewGwmp(region Region, port Port) Protocol {
	return Protocol{
		Type: ProtocolGwmp,
		Gwmp: &Gwmp{Mapping: GwmpMap{region: port}},
	}
}

// NewHTTP builds an HTTP roaming protocol.
func NewHTTP(flowType FlowType, dedupeTimeout uint32, path, authHeader string) Protocol {
	return Protocol{
		Type: ProtocolHTTP,
		HTTP: &HTTPRoaming{
			FlowType:      flowType,
			DedupeTimeout: dedupeTimeout,
			Path:          path,
			AuthHeader:    authHeader,
		},
	}
}

// NewPacketRouter builds the configuration-free packet router protocol.
func NewPacketRouter() Protocol {
	return Protocol{Type: ProtocolPacketRouter}
}

// Server is a route's forwarding destination.
type Server struct {
	Host     string    `json:"host"`
	Port     Port      `json:"port"`
	Protocol *Protocol `json:"protocol,omitempty"`
}

// clone returns a server whose protocol configuration is independent of
// the receiver's.
func (s Server) clone() Server {
	s.Protocol = s.Protocol.clone()
	return s
}

// clone deep-copies the protocol union; a nil protocol stays nil.
func (p *Protocol) clone() *Protocol {
	if p == nil {
		return nil
	}
	out := *p
	if p.Gwmp != nil {
		out.Gwmp = &Gwmp{Mapping: maps.Clone(p.Gwmp.Mapping)}
	}
	if p.HTTP != nil {
		http := *p.HTTP
		out.HTTP = &http
	}
	return &out
}

// GwmpAddMapping merges region/port entries into a GWMP server's mapping.
// Attempting this against another protocol variant is a declared error.
func (s *Server) GwmpAddMapping(mapping GwmpMap) error {
	if s.Protocol == nil {
		return ErrNoProtocol
	}
	switch s.Protocol.Type {
	case ProtocolGwmp:
		if s.Protocol.Gwmp == nil {
			s.Protocol.Gwmp = &Gwmp{}
		}
		if s.Protocol.Gwmp.Mapping == nil {
			s.Protocol.Gwmp.Mapping = make(GwmpMap, len(mapping))
		}
		for region, port := range mapping {
			s.Protocol.Gwmp.Mapping[region] = port
		}
		return nil
	case ProtocolHTTP:
		return fmt.Errorf("%w: cannot add region mapping to http", ErrProtocolMismatch)
	case ProtocolPacketRouter:
		return fmt.Errorf("%w: cannot add region mapping to packet router", ErrProtocolMismatch)
	default:
		return fmt.Errorf("%w: unknown protocol %d", ErrProtocolMismatch, s.Protocol.Type)
	}
}

// HTTPUpdate replaces an HTTP server's roaming details wholesale.
// Attempting this against another protocol variant is a declared error.
func (s *Server) HTTPUpdate(http HTTPRoaming) error {
	if s.Protocol == nil {
		return ErrNoProtocol
	}
	switch s.Protocol.Type {
	case ProtocolHTTP:
		s.Protocol.HTTP = &http
		return nil
	case ProtocolGwmp:
		return fmt.Errorf("%w: cannot update gwmp with http details", ErrProtocolMismatch)
	case ProtocolPacketRouter:
		return fmt.Errorf("%w: cannot update packet router with http details", ErrProtocolMismatch)
	default:
		return fmt.Errorf("%w: unknown protocol %d", ErrProtocolMismatch, s.Protocol.Type)
	}
}
