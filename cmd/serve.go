package cmd

import (
	"fmt"

	"tempo/logging"
	"tempo/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host      string `help:"Host to bind to" default:"localhost"`
	Port      string `help:"Port to listen on" default:"23234"`
	Countdown int    `help:"Pre-start countdown in seconds" default:"10"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	host := s.Host
	port := s.Port
	if cli.settings != nil {
		if host == "localhost" && cli.settings.SSHHost != "" {
			host = cli.settings.SSHHost
		}
		if port == "23234" && cli.settings.SSHPort != "" {
			port = cli.settings.SSHPort
		}
	}

	logging.Logger.Info("Starting tempo SSH server",
		"host", host,
		"port", port,
		"db_path", cli.DBPath)

	// Expand database path
	dbPath := expandPath(cli.DBPath)

	// Create server
	srv, err := server.NewServer(host, port, dbPath, cli.countdownSeconds(s.Countdown))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Start server (blocks until shutdown)
	return srv.Start()
}
