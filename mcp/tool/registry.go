package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/viant/drupal-mcp/internal/conv"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Handler executes a tool with the caller supplied argument bag and returns a
// value that is serialised to JSON text.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Entry binds tool metadata with its handler.
type Entry struct {
	Tool    mcpschema.Tool
	Handler Handler
}

// Name returns the tool name.
func (e *Entry) Name() string { return e.Tool.Name }

// Description returns the tool description or an empty string.
func (e *Entry) Description() string { return conv.Dereference[string](e.Tool.Description) }

// UnknownToolError is returned for names missing from the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return "Unknown tool: " + e.Name }

// Registry is an ordered, read-only set of tools. It is built once and can be
// shared by any number of connections.
type Registry struct {
	entries []*Entry
	index   map[string]*Entry
	logger  hclog.Logger
}

// NewRegistry creates a registry; the first entry wins on duplicate names.
func NewRegistry(logger hclog.Logger, entries ...*Entry) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	r := &Registry{index: make(map[string]*Entry, len(entries)), logger: logger}
	for _, entry := range entries {
		if _, dup := r.index[entry.Name()]; dup {
			continue
		}
		r.entries = append(r.entries, entry)
		r.index[entry.Name()] = entry
	}
	return r
}

// Tools returns tool metadata in declaration order.
func (r *Registry) Tools() []mcpschema.Tool {
	ret := make([]mcpschema.Tool, len(r.entries))
	for i, entry := range r.entries {
		ret[i] = entry.Tool
	}
	return ret
}

// Entries returns a copy of the registered entries.
func (r *Registry) Entries() []*Entry {
	return append([]*Entry{}, r.entries...)
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	entry, ok := r.index[name]
	return entry, ok
}

// Call runs the named tool. It never returns a Go error: every failure,
// including an unknown name or a handler panic, is reported as an error
// flagged text result.
func (r *Registry) Call(ctx context.Context, name string, args map[string]interface{}) (result *mcpschema.CallToolResult) {
	logger := r.logger.With("invocation", uuid.NewString(), "tool", name)
	started := time.Now()
	defer func() {
		if p := recover(); p != nil {
			result = ErrorResult(fmt.Errorf("tool %s failed: %v", name, p))
		}
		if conv.Dereference[bool](result.IsError) {
			logger.Warn("tool call failed", "elapsed", time.Since(started), "error", result.Content[0].Text)
			return
		}
		logger.Info("tool call completed", "elapsed", time.Since(started))
	}()

	entry, ok := r.Lookup(name)
	if !ok {
		return ErrorResult(&UnknownToolError{Name: name})
	}
	output, err := entry.Handler(ctx, args)
	if err != nil {
		return ErrorResult(err)
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return ErrorResult(fmt.Errorf("failed to encode %s result: %w", name, err))
	}
	return TextResult(string(data))
}

// TextResult wraps text into a successful tool result.
func TextResult(text string) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
		Type: "text",
		Text: text,
	}}}
}

// ErrorResult converts err into an error flagged tool result.
func ErrorResult(err error) *mcpschema.CallToolResult {
	res := TextResult("Error: " + err.Error())
	res.IsError = conv.Pointer[bool](true)
	return res
}
