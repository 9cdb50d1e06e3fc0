// Package mcp exposes the calculator as MCP tools so an LLM client can plan
// a session: suggest working sets, build warm-up ramps, resolve manual
// schemes, and break loads into plates.
package mcp

import (
	"log/slog"

	"github.com/claude/liftcalc/internal/config"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all calculator tools registered.
func New(cfg *config.Config, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftCalc", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Weight-training load calculator. Suggests next-session working sets from last session's weights and a felt rating, generates warm-up ramps, resolves rep/weight and rep/percentage schemes, and decomposes bar loads into per-side plates. All weights are kilograms."),
	)

	h := &handlers{cfg: cfg, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolSuggestWorkingSets, Handler: h.suggestWorkingSets},
		server.ServerTool{Tool: toolGenerateWarmups, Handler: h.generateWarmups},
		server.ServerTool{Tool: toolResolveScheme, Handler: h.resolveScheme},
		server.ServerTool{Tool: toolPlateBreakdown, Handler: h.plateBreakdown},
		server.ServerTool{Tool: toolDefaultIncrements, Handler: h.defaultIncrements},
	)

	return s
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	cfg *config.Config
	log *slog.Logger
}
