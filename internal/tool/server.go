package tool

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer returns an MCP server with every tool registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "docfield-mapper", Version: version}, nil)

	mcp.AddTool(server, MetadataResolveFields, ResolveFields)
	mcp.AddTool(server, MetadataExtractPairs, ExtractPairs)

	return server
}

// ServeStdio serves the tools over stdin and stdout until ctx is done or
// the client disconnects.
func ServeStdio(ctx context.Context, version string) error {
	slog.Info("serving MCP tools over stdio", "version", version)

	return NewServer(version).Run(ctx, &mcp.StdioTransport{})
}
