package drupal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit is the page size used when no positive limit is given.
const DefaultLimit = 10

// QueryOptions narrows a content query.
type QueryOptions struct {
	Limit  int
	Title  string
	Status *bool
}

func (o *QueryOptions) params() url.Values {
	params := url.Values{}
	limit := DefaultLimit
	if o != nil && o.Limit > 0 {
		limit = o.Limit
	}
	params.Set("page[limit]", strconv.Itoa(limit))
	if o == nil {
		return params
	}
	if o.Title != "" {
		params.Set("filter[title][operator]", "CONTAINS")
		params.Set("filter[title][value]", o.Title)
	}
	if o.Status != nil {
		status := "0"
		if *o.Status {
			status = "1"
		}
		params.Set("filter[status]", status)
	}
	return params
}

// QueryContent returns nodes of contentType matching options. The result is
// always a list, even when the site answers with a single resource.
func (c *Client) QueryContent(ctx context.Context, contentType string, options *QueryOptions) ([]Node, error) {
	doc, err := c.get(ctx, "/node/"+url.PathEscape(contentType), options.params())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	var nodes []Node
	if err := doc.resources(&nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return nodes, nil
}

// GetNode returns a single node by id. Related entities named in include are
// requested through the JSON:API include parameter.
func (c *Client) GetNode(ctx context.Context, nodeID string, include []string) (*Node, error) {
	params := url.Values{}
	if len(include) > 0 {
		params.Set("include", strings.Join(include, ","))
	}
	doc, err := c.get(ctx, "/node/node/"+url.PathEscape(nodeID), params)
	if err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{ID: nodeID}
		}
		return nil, fmt.Errorf("%w: %v", ErrGet, err)
	}
	node := &Node{}
	if err := doc.resource(node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGet, err)
	}
	return node, nil
}

// ListContentTypes returns every node bundle defined on the site.
func (c *Client) ListContentTypes(ctx context.Context) ([]ContentType, error) {
	doc, err := c.get(ctx, "/node_type/node_type", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrList, err)
	}
	var resources []contentTypeResource
	if err := doc.resources(&resources); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrList, err)
	}
	types := make([]ContentType, 0, len(resources))
	for _, resource := range resources {
		types = append(types, ContentType{
			ID:    resource.Attributes.InternalType,
			Label: resource.Attributes.Name,
		})
	}
	return types, nil
}
