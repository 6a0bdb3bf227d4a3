package main

import (
	"log/slog"
	"os"

	"cvgen/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("Render failed", "error", err)
		os.Exit(1)
	}
}
