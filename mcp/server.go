package mcp

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/drupal-mcp/mcp/tool"
)

// Handler serves the Drupal tool catalog. Tool listing and dispatch go
// through the tool registry, so every tools/call, including one naming an
// unknown tool, yields a tool result rather than a JSON-RPC error.
type Handler struct {
	*serverproto.DefaultHandler
	registry *tool.Registry
}

// ListTools returns the catalog in declaration order.
func (h *Handler) ListTools(_ context.Context, _ *mcpschema.ListToolsRequest) (*mcpschema.ListToolsResult, *jsonrpc.Error) {
	return &mcpschema.ListToolsResult{Tools: h.registry.Tools()}, nil
}

// CallTool dispatches any tool name to the registry.
func (h *Handler) CallTool(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	return h.registry.Call(ctx, request.Params.Name, request.Params.Arguments), nil
}

// NewHandler returns an MCP handler exposing the shared tool registry. The
// registry is built once at bootstrap and reused by every connection.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, entry := range s.Tools() {
		impl.RegisterTool(entry)
	}
	return &Handler{DefaultHandler: impl, registry: s.registry}, nil
}
