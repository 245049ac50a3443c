// Command loraroute-server runs the packet routing configuration
// registry with an interactive operator console.
//
// Usage:
//
//	loraroute-server [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-listen string     Override the configured listen address
//	-log-level string  Log level: debug, info, warn, error
//	-event-log string  Append-only audit event log path (CBOR)
//	-keypair string    Operator ed25519 keypair path (created if missing)
//	-interactive       Run the operator console (default true)
//
// Examples:
//
//	# Start with defaults and a generated operator key
//	loraroute-server -keypair operator.key
//
//	# Start from a config file with an audit log
//	loraroute-server -config /etc/loraroute/settings.yaml -event-log events.cbor
package main

import (
	"crypto/ed25519"
	"flag"
	stdlog "log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/loraroute/loraroute-go/cmd/loraroute-server/interactive"
	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/config"
	"github.com/loraroute/loraroute-go/pkg/log"
	"github.com/loraroute/loraroute-go/pkg/notify"
	"github.com/loraroute/loraroute-go/pkg/registry"
	"github.com/loraroute/loraroute-go/pkg/server"
)

var (
	configPath  string
	listenAddr  string
	logLevel    string
	eventLog    string
	keypairPath string
	runConsole  bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&listenAddr, "listen", "", "Override the configured listen address")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&eventLog, "event-log", "", "Append-only audit event log path (CBOR)")
	flag.StringVar(&keypairPath, "keypair", "operator.key", "Operator ed25519 keypair path (created if missing)")
	flag.BoolVar(&runConsole, "interactive", true, "Run the operator console")
}

func main() {
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(settings.LogLevel)
	slog.SetDefault(logger)

	operatorKey, err := auth.LoadOrCreateKey(keypairPath)
	if err != nil {
		stdlog.Fatalf("Failed to load operator keypair: %v", err)
	}
	operatorPub := auth.PublicKey(operatorKey.Public().(ed25519.PublicKey))

	audit, closeAudit, err := newAuditLogger(settings, logger)
	if err != nil {
		stdlog.Fatalf("Failed to open event log: %v", err)
	}
	defer closeAudit()

	hub := notify.NewHubWithBuffer(settings.EventBuffer)
	reg := registry.New(hub, registry.WithHeliumNetID(settings.NetID()))
	console := server.NewConsole(reg,
		server.WithAdminKeys(operatorPub),
		server.WithAuditLogger(audit),
	)

	logger.Info("registry started",
		"listen", settings.ListenAddr,
		"helium_net_id", settings.NetID().String(),
		"operator", operatorPub.String(),
	)

	if runConsole {
		ic, err := interactive.New(console, interactive.Operator{
			Key:     operatorKey,
			Public:  operatorPub,
			Devaddr: settings.DevaddrBlock,
		})
		if err != nil {
			stdlog.Fatalf("Failed to start console: %v", err)
		}
		ic.Run()
		logger.Info("console closed, shutting down")
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())
}

func loadSettings() (config.Settings, error) {
	settings := config.New()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return config.Settings{}, err
		}
	}
	if listenAddr != "" {
		settings.ListenAddr = listenAddr
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	if eventLog != "" {
		settings.EventLogPath = eventLog
	}
	return settings, settings.Validate()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newAuditLogger builds the audit sink: structured log output always,
// plus the CBOR file log when a path is configured.
func newAuditLogger(settings config.Settings, logger *slog.Logger) (log.Logger, func(), error) {
	slogSink := log.NewSlogAdapter(logger)
	if settings.EventLogPath == "" {
		return slogSink, func() {}, nil
	}

	fileSink, err := log.NewFileLogger(settings.EventLogPath)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := fileSink.Close(); err != nil {
			logger.Warn("closing event log", "err", err)
		}
	}
	return log.NewMultiLogger(slogSink, fileSink), closer, nil
}
