package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftcalc/internal/config"
	"github.com/claude/liftcalc/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional; stock gym defaults when omitted)")
	flag.Parse()

	// Log to stderr — stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	s := mcp.New(cfg, Version, log)
	log.Info("LiftCalc MCP server starting", "version", Version, "transport", "stdio")

	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
