package main

import (
	"fmt"
	"log/slog"
	"os"
)

// main is the entrypoint for the searchlab command.
func main() {
	// Minimal logger until flags are parsed; PersistentPreRun replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
