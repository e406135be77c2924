// Package mcp exposes a running simulation as an MCP server, so agent
// hosts can seed the grid, advance the step loop and inspect snapshots as
// tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/pkg/domain"
)

// SnapshotResult is the structured output shared by the step and snapshot
// tools.
type SnapshotResult struct {
	Step   int            `json:"step" jsonschema_description:"Number of completed steps"`
	Width  int            `json:"width" jsonschema_description:"Grid width"`
	Height int            `json:"height" jsonschema_description:"Grid height"`
	Cells  []domain.State `json:"cells" jsonschema_description:"Row-major state ordinals (0=susceptible, 1=latent, 2=infected, 3=recovered)"`
	Census map[string]int `json:"census" jsonschema_description:"Cell count per disease state"`
}

// SeedResult is the structured output of the seed tool.
type SeedResult struct {
	Affected int `json:"affected" jsonschema_description:"Number of cells set by this seeding pass"`
}

// Server wraps a Simulation and exposes it as an MCP Server.
type Server struct {
	sim       *contagion.Simulation
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance around a simulation.
func NewServer(sim *contagion.Simulation) *Server {
	s := &Server{
		sim:       sim,
		mcpServer: server.NewMCPServer("contagion-mcp", contagion.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	stepTool := mcp.NewTool("step",
		mcp.WithDescription("Advance the epidemic simulation by a number of steps and return the resulting snapshot."),
		mcp.WithNumber("count", mcp.Description("Steps to run (default 1)")),
		mcp.WithOutputSchema[SnapshotResult](),
	)
	s.mcpServer.AddTool(stepTool, mcp.NewStructuredToolHandler(s.handleStep))

	snapshotTool := mcp.NewTool("snapshot",
		mcp.WithDescription("Return the current snapshot without advancing the simulation."),
		mcp.WithOutputSchema[SnapshotResult](),
	)
	s.mcpServer.AddTool(snapshotTool, mcp.NewStructuredToolHandler(s.handleSnapshot))

	seedTool := mcp.NewTool("seed",
		mcp.WithDescription("Seed the grid: each cell independently becomes the given state with probability ratio."),
		mcp.WithNumber("ratio", mcp.Required(), mcp.Description("Per-cell probability in [0, 1]")),
		mcp.WithString("state", mcp.Description("Target state name (default latent)")),
		mcp.WithOutputSchema[SeedResult](),
	)
	s.mcpServer.AddTool(seedTool, mcp.NewStructuredToolHandler(s.handleSeed))
}

func (s *Server) snapshotResult(snap domain.Snapshot) SnapshotResult {
	w, h := s.sim.Size()
	census := make(map[string]int, len(domain.States))
	for state, count := range snap.Grid.Census() {
		census[state.String()] = count
	}
	return SnapshotResult{
		Step:   snap.Step,
		Width:  w,
		Height: h,
		Cells:  snap.Grid.Cells(),
		Census: census,
	}
}

func (s *Server) handleStep(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SnapshotResult, error) {
	count := 1
	if raw, ok := args["count"].(float64); ok {
		count = int(raw)
	}
	if count < 1 || count > 10000 {
		return SnapshotResult{}, fmt.Errorf("count must be between 1 and 10000, got %d", count)
	}

	var snap domain.Snapshot
	for i := 0; i < count; i++ {
		snap = s.sim.Step()
	}
	return s.snapshotResult(snap), nil
}

func (s *Server) handleSnapshot(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SnapshotResult, error) {
	return s.snapshotResult(s.sim.Snapshot()), nil
}

func (s *Server) handleSeed(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SeedResult, error) {
	ratio, ok := args["ratio"].(float64)
	if !ok {
		return SeedResult{}, fmt.Errorf("ratio is required")
	}

	state := domain.Latent
	if name, ok := args["state"].(string); ok && name != "" {
		var err error
		if state, err = domain.ParseState(name); err != nil {
			return SeedResult{}, err
		}
	}

	affected, err := s.sim.Seed(ratio, state)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed failed: %w", err)
	}
	return SeedResult{Affected: affected}, nil
}
