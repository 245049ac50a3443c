package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loraroute/loraroute-go/pkg/lorafield"
)

// Defaults applied by New and by Parse for fields the file omits.
const (
	DefaultListenAddr   = "127.0.0.1:50051"
	DefaultLogLevel     = "info"
	DefaultEventBuffer  = 64
	DefaultDevaddrBlock = 8
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Settings holds the server configuration.
type Settings struct {
	// ListenAddr is the host:port the management console binds to.
	ListenAddr string `yaml:"listen_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// EventLogPath, when set, enables the append-only audit event log.
	EventLogPath string `yaml:"event_log_path"`
	// HeliumNetID is the hex NetID new organizations draw device address
	// blocks from. Empty selects the well-known Helium type 6 NetID.
	HeliumNetID string `yaml:"helium_net_id"`
	// EventBuffer is the per-subscriber event channel depth.
	EventBuffer int `yaml:"event_buffer"`
	// DevaddrBlock is the default address count for new organizations.
	DevaddrBlock uint32 `yaml:"devaddr_block"`
}

// New returns settings with every field at its default.
func New() Settings {
	return Settings{
		ListenAddr:   DefaultListenAddr,
		LogLevel:     DefaultLogLevel,
		HeliumNetID:  lorafield.HeliumNetIDType6.String(),
		EventBuffer:  DefaultEventBuffer,
		DevaddrBlock: DefaultDevaddrBlock,
	}
}

// Parse parses settings from YAML bytes on top of the defaults.
func Parse(data []byte) (Settings, error) {
	s := New()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load loads and parses settings from a file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	if s.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if !logLevels[s.LogLevel] {
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", s.LogLevel)
	}
	if _, err := lorafield.ParseNetID(s.HeliumNetID); err != nil {
		return fmt.Errorf("helium_net_id: %w", err)
	}
	if s.EventBuffer <= 0 {
		return errors.New("event_buffer must be positive")
	}
	if s.DevaddrBlock == 0 || s.DevaddrBlock%8 != 0 {
		return errors.New("devaddr_block must be a positive multiple of 8")
	}
	return nil
}

// NetID returns the parsed Helium NetID. Validate must have passed.
func (s Settings) NetID() lorafield.NetID {
	id, err := lorafield.ParseNetID(s.HeliumNetID)
	if err != nil {
		panic(fmt.Sprintf("settings not validated: %v", err))
	}
	return id
}
