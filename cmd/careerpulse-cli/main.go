package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"careerpulse/internal/cli"
	applog "careerpulse/internal/log"
)

func main() {
	_ = godotenv.Load()

	// Keep command output clean; only warnings and errors are logged.
	slog.SetDefault(applog.WithComponent(applog.Setup(slog.LevelWarn), applog.ComponentCLI))

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
