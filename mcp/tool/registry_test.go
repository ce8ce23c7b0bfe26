package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/drupal-mcp/drupal"
	"github.com/viant/drupal-mcp/internal/conv"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// fakeContent records calls and serves canned responses.
type fakeContent struct {
	nodes        []drupal.Node
	node         *drupal.Node
	types        []drupal.ContentType
	err          error
	contentType  string
	options      *drupal.QueryOptions
	nodeID       string
	include      []string
	searchTerm   string
	searchLimit  int
	searchCalled bool
}

func (f *fakeContent) QueryContent(_ context.Context, contentType string, options *drupal.QueryOptions) ([]drupal.Node, error) {
	f.contentType, f.options = contentType, options
	if f.err != nil {
		return nil, f.err
	}
	limit := options.Limit
	if limit <= 0 {
		limit = drupal.DefaultLimit
	}
	if limit > len(f.nodes) {
		limit = len(f.nodes)
	}
	return f.nodes[:limit], nil
}

func (f *fakeContent) GetNode(_ context.Context, nodeID string, include []string) (*drupal.Node, error) {
	f.nodeID, f.include = nodeID, include
	if f.err != nil {
		return nil, f.err
	}
	return f.node, nil
}

func (f *fakeContent) ListContentTypes(context.Context) ([]drupal.ContentType, error) {
	return f.types, f.err
}

func (f *fakeContent) SearchContent(_ context.Context, term string, limit int) ([]drupal.Node, error) {
	f.searchCalled, f.searchTerm, f.searchLimit = true, term, limit
	if f.err != nil {
		return nil, f.err
	}
	return f.nodes, nil
}

func articles(n int) []drupal.Node {
	ret := make([]drupal.Node, 0, n)
	for i := 1; i <= n; i++ {
		ret = append(ret, drupal.Node{
			Type: "node--article",
			ID:   fmt.Sprintf("uuid-%d", i),
			Attributes: drupal.Attributes{
				"title":   fmt.Sprintf("Article %d", i),
				"created": "2024-01-01T00:00:00+00:00",
				"changed": "2024-02-01T00:00:00+00:00",
				"status":  i%2 == 1,
				"promote": true,
			},
		})
	}
	return ret
}

func textOf(t *testing.T, result *mcpschema.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	return result.Content[0].Text
}

func TestRegistry_Tools(t *testing.T) {
	registry := Catalog(&fakeContent{}, nil)
	tools := registry.Tools()
	require.Len(t, tools, 4)

	var names []string
	for _, aTool := range tools {
		names = append(names, aTool.Name)
		assert.NotEmpty(t, conv.Dereference[string](aTool.Description))
		assert.Equal(t, "object", aTool.InputSchema.Type)
	}
	assert.Equal(t, []string{QueryContent, GetNode, ListContentTypes, SearchContent}, names)
	assert.Equal(t, []string{"contentType"}, tools[0].InputSchema.Required)
	assert.Equal(t, []string{"nodeType", "nodeId"}, tools[1].InputSchema.Required)
	assert.Empty(t, tools[2].InputSchema.Required)
	assert.Equal(t, []string{"searchTerm"}, tools[3].InputSchema.Required)
	assert.Contains(t, tools[0].InputSchema.Properties, "status")
	assert.Equal(t, 10, tools[3].InputSchema.Properties["limit"]["default"])

	// listing is pure
	assert.Equal(t, tools, registry.Tools())
}

func TestRegistry_Call_QueryContent(t *testing.T) {
	content := &fakeContent{nodes: articles(5)}
	registry := Catalog(content, nil)

	result := registry.Call(context.Background(), QueryContent, map[string]interface{}{"contentType": "article", "limit": float64(2)})
	assert.Nil(t, result.IsError)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, map[string]interface{}{
		"id":      "uuid-1",
		"title":   "Article 1",
		"type":    "node--article",
		"status":  "published",
		"created": "2024-01-01T00:00:00+00:00",
		"changed": "2024-02-01T00:00:00+00:00",
	}, summaries[0])
	assert.Equal(t, "uuid-2", summaries[1]["id"])
	assert.Equal(t, "unpublished", summaries[1]["status"])

	assert.Equal(t, "article", content.contentType)
	assert.Equal(t, 2, content.options.Limit)
	assert.Nil(t, content.options.Status)
}

func TestRegistry_Call_PrettyPrinted(t *testing.T) {
	registry := Catalog(&fakeContent{types: []drupal.ContentType{{ID: "article", Label: "Article"}}}, nil)
	result := registry.Call(context.Background(), ListContentTypes, nil)
	assert.Equal(t, "[\n  {\n    \"id\": \"article\",\n    \"label\": \"Article\"\n  }\n]", textOf(t, result))
}

func TestRegistry_Call_Arguments(t *testing.T) {
	var testCases = []struct {
		description string
		tool        string
		args        map[string]interface{}
		verify      func(t *testing.T, content *fakeContent)
	}{
		{
			description: "query filters coerced",
			tool:        QueryContent,
			args:        map[string]interface{}{"contentType": "page", "limit": "3", "title": "Home", "status": false},
			verify: func(t *testing.T, content *fakeContent) {
				assert.Equal(t, "page", content.contentType)
				assert.Equal(t, 3, content.options.Limit)
				assert.Equal(t, "Home", content.options.Title)
				require.NotNil(t, content.options.Status)
				assert.False(t, *content.options.Status)
			},
		},
		{
			description: "get node ignores node type for routing",
			tool:        GetNode,
			args:        map[string]interface{}{"nodeType": "article", "nodeId": "abc", "include": []interface{}{"uid", "field_image"}},
			verify: func(t *testing.T, content *fakeContent) {
				assert.Equal(t, "abc", content.nodeID)
				assert.Equal(t, []string{"uid", "field_image"}, content.include)
			},
		},
		{
			description: "search default limit passed through",
			tool:        SearchContent,
			args:        map[string]interface{}{"searchTerm": "drupal"},
			verify: func(t *testing.T, content *fakeContent) {
				assert.Equal(t, "drupal", content.searchTerm)
				assert.Equal(t, 0, content.searchLimit)
			},
		},
		{
			description: "negative query limit left to client default",
			tool:        QueryContent,
			args:        map[string]interface{}{"contentType": "article", "limit": -5},
			verify: func(t *testing.T, content *fakeContent) {
				assert.Equal(t, -5, content.options.Limit)
			},
		},
		{
			description: "negative search limit left to client default",
			tool:        SearchContent,
			args:        map[string]interface{}{"searchTerm": "drupal", "limit": float64(-1)},
			verify: func(t *testing.T, content *fakeContent) {
				assert.Equal(t, -1, content.searchLimit)
			},
		},
	}
	for _, testCase := range testCases {
		content := &fakeContent{nodes: articles(1), node: &articles(1)[0]}
		result := Catalog(content, nil).Call(context.Background(), testCase.tool, testCase.args)
		assert.Nil(t, result.IsError, testCase.description+": "+textOf(t, result))
		testCase.verify(t, content)
	}
}

func TestRegistry_Call_GetNode_Raw(t *testing.T) {
	node := &articles(1)[0]
	node.Attributes["body"] = map[string]interface{}{"value": "<p>Hi</p>", "format": "basic_html", "processed": "<p>Hi</p>"}
	node.Relationships = map[string]interface{}{"uid": map[string]interface{}{"data": map[string]interface{}{"type": "user--user", "id": "u1"}}}
	registry := Catalog(&fakeContent{node: node}, nil)

	result := registry.Call(context.Background(), GetNode, map[string]interface{}{"nodeType": "article", "nodeId": "uuid-1"})
	assert.Nil(t, result.IsError)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &raw))
	assert.Equal(t, "uuid-1", raw["id"])
	attributes := raw["attributes"].(map[string]interface{})
	assert.Equal(t, true, attributes["promote"])
	assert.Contains(t, attributes, "body")
	assert.Contains(t, raw, "relationships")
}

func TestRegistry_Call_SearchProjection(t *testing.T) {
	registry := Catalog(&fakeContent{nodes: articles(2)}, nil)
	result := registry.Call(context.Background(), SearchContent, map[string]interface{}{"searchTerm": "Article", "limit": 5})
	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, map[string]interface{}{"id": "uuid-1", "title": "Article 1", "type": "node--article", "status": "published"}, summaries[0])
}

func TestRegistry_Call_UntitledNode(t *testing.T) {
	nodes := articles(1)
	delete(nodes[0].Attributes, "title")
	registry := Catalog(&fakeContent{nodes: nodes}, nil)

	for _, name := range []string{QueryContent, SearchContent} {
		args := map[string]interface{}{"contentType": "article", "searchTerm": "Article"}
		var summaries []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(textOf(t, registry.Call(context.Background(), name, args))), &summaries), name)
		require.Len(t, summaries, 1, name)
		assert.NotContains(t, summaries[0], "title", name)
		assert.Equal(t, "uuid-1", summaries[0]["id"], name)
	}
}

func TestRegistry_Call_EmptyList(t *testing.T) {
	registry := Catalog(&fakeContent{}, nil)
	assert.Equal(t, "[]", textOf(t, registry.Call(context.Background(), QueryContent, map[string]interface{}{"contentType": "article"})))
	assert.Equal(t, "[]", textOf(t, registry.Call(context.Background(), ListContentTypes, map[string]interface{}{})))
}

func TestRegistry_Call_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		content     *fakeContent
		tool        string
		args        map[string]interface{}
		expect      string
	}{
		{
			description: "unknown tool",
			content:     &fakeContent{},
			tool:        "delete_everything",
			expect:      "Unknown tool: delete_everything",
		},
		{
			description: "not found",
			content:     &fakeContent{err: &drupal.NotFoundError{ID: "42"}},
			tool:        GetNode,
			args:        map[string]interface{}{"nodeType": "article", "nodeId": "42"},
			expect:      "Error: node 42 not found",
		},
		{
			description: "query failure",
			content:     &fakeContent{err: fmt.Errorf("%w: boom", drupal.ErrQuery)},
			tool:        QueryContent,
			args:        map[string]interface{}{"contentType": "article"},
			expect:      "Error: failed to query content: boom",
		},
		{
			description: "missing required argument",
			content:     &fakeContent{},
			tool:        QueryContent,
			args:        map[string]interface{}{},
			expect:      "contentType: cannot be blank",
		},
		{
			description: "malformed argument",
			content:     &fakeContent{},
			tool:        SearchContent,
			args:        map[string]interface{}{"searchTerm": "x", "limit": "many"},
			expect:      "invalid arguments",
		},
		{
			description: "list failure",
			content:     &fakeContent{err: errors.New("failed to list content types: request failed with status code 500")},
			tool:        ListContentTypes,
			expect:      "Error: failed to list content types",
		},
	}
	for _, testCase := range testCases {
		result := Catalog(testCase.content, nil).Call(context.Background(), testCase.tool, testCase.args)
		require.NotNil(t, result.IsError, testCase.description)
		assert.True(t, *result.IsError, testCase.description)
		assert.Contains(t, textOf(t, result), testCase.expect, testCase.description)
	}
}

func TestRegistry_Call_RecoversPanic(t *testing.T) {
	registry := NewRegistry(nil, &Entry{
		Tool: mcpschema.Tool{Name: "explode"},
		Handler: func(context.Context, map[string]interface{}) (interface{}, error) {
			panic("kaboom")
		},
	})
	result := registry.Call(context.Background(), "explode", nil)
	require.NotNil(t, result.IsError)
	assert.Contains(t, textOf(t, result), "kaboom")
}

func TestNewRegistry_DuplicateKeepsFirst(t *testing.T) {
	first := &Entry{Tool: mcpschema.Tool{Name: "a", Description: conv.Pointer("first")}}
	second := &Entry{Tool: mcpschema.Tool{Name: "a", Description: conv.Pointer("second")}}
	registry := NewRegistry(nil, first, second)
	assert.Len(t, registry.Entries(), 1)
	entry, ok := registry.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "first", entry.Description())
}
