package main

import (
	"fmt"
	"os"

	"tempo/cmd"
	"tempo/config"
	"tempo/version"

	"github.com/alecthomas/kong"
)

func main() {
	// Load settings from ~/.tempo/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	ctx := kong.Parse(&cli,
		kong.Name("tempo"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
		kong.Bind(&cli),
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
