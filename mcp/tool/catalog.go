package tool

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/viant/drupal-mcp/drupal"
	"github.com/viant/drupal-mcp/internal/conv"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Tool names.
const (
	QueryContent     = "query_content"
	GetNode          = "get_node"
	ListContentTypes = "list_content_types"
	SearchContent    = "search_content"
)

// ContentService is the subset of the Drupal client used by the catalog.
type ContentService interface {
	QueryContent(ctx context.Context, contentType string, options *drupal.QueryOptions) ([]drupal.Node, error)
	GetNode(ctx context.Context, nodeID string, include []string) (*drupal.Node, error)
	ListContentTypes(ctx context.Context) ([]drupal.ContentType, error)
	SearchContent(ctx context.Context, term string, limit int) ([]drupal.Node, error)
}

// Catalog builds the registry of Drupal tools backed by svc.
func Catalog(svc ContentService, logger hclog.Logger) *Registry {
	return NewRegistry(logger,
		&Entry{Tool: queryContentTool(), Handler: queryContentHandler(svc)},
		&Entry{Tool: getNodeTool(), Handler: getNodeHandler(svc)},
		&Entry{Tool: listContentTypesTool(), Handler: listContentTypesHandler(svc)},
		&Entry{Tool: searchContentTool(), Handler: searchContentHandler(svc)},
	)
}

func queryContentTool() mcpschema.Tool {
	return mcpschema.Tool{
		Name:        QueryContent,
		Description: conv.Pointer("Search and filter Drupal content by type. Returns a list of nodes matching the criteria."),
		InputSchema: mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"contentType": {
					"type":        "string",
					"description": `The machine name of the content type (e.g., "article", "page", "blog_post")`,
				},
				"limit": {
					"type":        "number",
					"description": "Maximum number of results to return (default: 10)",
					"default":     drupal.DefaultLimit,
				},
				"title": {
					"type":        "string",
					"description": "Filter by title (partial match)",
				},
				"status": {
					"type":        "boolean",
					"description": "Filter by publication status (true = published, false = unpublished)",
				},
			},
			Required: []string{"contentType"},
		},
	}
}

func getNodeTool() mcpschema.Tool {
	return mcpschema.Tool{
		Name:        GetNode,
		Description: conv.Pointer("Retrieve complete details of a specific Drupal node by its ID"),
		InputSchema: mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"nodeType": {
					"type":        "string",
					"description": `The machine name of the content type (e.g., "article", "page", "blog_post")`,
				},
				"nodeId": {
					"type":        "string",
					"description": "The UUID or numeric ID of the node",
				},
				"include": {
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": `Related entities to include (e.g., ["field_image", "uid"] to include image and author)`,
				},
			},
			Required: []string{"nodeType", "nodeId"},
		},
	}
}

func listContentTypesTool() mcpschema.Tool {
	return mcpschema.Tool{
		Name:        ListContentTypes,
		Description: conv.Pointer("List all available content types on the Drupal site"),
		InputSchema: mcpschema.ToolInputSchema{
			Type:       "object",
			Properties: map[string]map[string]interface{}{},
		},
	}
}

func searchContentTool() mcpschema.Tool {
	return mcpschema.Tool{
		Name:        SearchContent,
		Description: conv.Pointer("Search across all content types by title. Useful when you don't know the specific content type."),
		InputSchema: mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"searchTerm": {
					"type":        "string",
					"description": "The text to search for in content titles",
				},
				"limit": {
					"type":        "number",
					"description": "Maximum number of results (default: 10)",
					"default":     drupal.DefaultLimit,
				},
			},
			Required: []string{"searchTerm"},
		},
	}
}

func queryContentHandler(svc ContentService) Handler {
	return func(ctx context.Context, raw map[string]interface{}) (interface{}, error) {
		args := &QueryContentArgs{}
		if err := decodeArgs(raw, args); err != nil {
			return nil, err
		}
		nodes, err := svc.QueryContent(ctx, args.ContentType, &drupal.QueryOptions{
			Limit:  args.Limit,
			Title:  args.Title,
			Status: args.Status,
		})
		if err != nil {
			return nil, err
		}
		return summarizeAll(nodes, true), nil
	}
}

func getNodeHandler(svc ContentService) Handler {
	return func(ctx context.Context, raw map[string]interface{}) (interface{}, error) {
		args := &GetNodeArgs{}
		if err := decodeArgs(raw, args); err != nil {
			return nil, err
		}
		return svc.GetNode(ctx, args.NodeID, args.Include)
	}
}

func listContentTypesHandler(svc ContentService) Handler {
	return func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
		types, err := svc.ListContentTypes(ctx)
		if err != nil {
			return nil, err
		}
		if types == nil {
			types = []drupal.ContentType{}
		}
		return types, nil
	}
}

func searchContentHandler(svc ContentService) Handler {
	return func(ctx context.Context, raw map[string]interface{}) (interface{}, error) {
		args := &SearchContentArgs{}
		if err := decodeArgs(raw, args); err != nil {
			return nil, err
		}
		nodes, err := svc.SearchContent(ctx, args.SearchTerm, args.Limit)
		if err != nil {
			return nil, err
		}
		return summarizeAll(nodes, false), nil
	}
}
