package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/drupal-mcp/mcp/matcher"
	"github.com/viant/drupal-mcp/mcp/tool"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns the MCP tool entries in catalog order. Every handler
// dispatches through the registry so that failures become error results.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.registry.Entries() {
		result = append(result, s.toolEntry(entry))
	}
	return result
}

func (s *Service) toolEntry(entry *tool.Entry) *serverproto.ToolEntry {
	toolEntry := &serverproto.ToolEntry{Metadata: entry.Tool}
	toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		return s.registry.Call(ctx, request.Params.Name, request.Params.Arguments), nil
	}
	return toolEntry
}

// MatchTools returns the tools whose name satisfies pattern (see matcher).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		if matcher.Match(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// ToolMetadata returns description and input schema for a named tool. The
// last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, ok := s.registry.Lookup(name)
	if !ok {
		return "", nil, false
	}
	return entry.Description(), entry.Tool.InputSchema, true
}

// CallTool invokes a tool the same way an MCP client would.
func (s *Service) CallTool(ctx context.Context, name string, args map[string]interface{}) *mcpschema.CallToolResult {
	return s.registry.Call(ctx, name, args)
}

// ExecuteAction schedules an ad-hoc Fluxor action execution. name uses the
// service/method form, e.g. drupal/search. The runtime must be started.
func (s *Service) ExecuteAction(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	idx := strings.LastIndex(name, "/")
	if idx <= 0 || idx == len(name)-1 {
		return nil, fmt.Errorf("action name must be service/method, got %q", name)
	}
	exec, err := execution.NewAtHocExecution(name[:idx], name[idx+1:], args)
	if err != nil {
		return nil, err
	}
	waitFn, err := s.Workflow.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return nil, err
	}
	anExec, err := waitFn(timeout)
	if err != nil {
		return nil, err
	}
	if anExec.Error != "" {
		return nil, fmt.Errorf("%s: %s", name, anExec.Error)
	}
	return anExec.Output, nil
}
