package drupal

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// typeResult is the outcome of querying one content type during a search.
type typeResult struct {
	contentType string
	nodes       []Node
	err         error
}

// SearchContent looks for published nodes whose title contains term across
// all content types. Types are queried one after another in listing order;
// a type that cannot be queried (typically for lack of permission) is
// skipped. The concatenated result is cut to limit.
func (c *Client) SearchContent(ctx context.Context, term string, limit int) ([]Node, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	types, err := c.ListContentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearch, err)
	}
	if len(types) == 0 {
		return []Node{}, nil
	}

	perType := (limit + len(types) - 1) / len(types)
	published := true
	results := make([]typeResult, 0, len(types))
	for _, contentType := range types {
		nodes, err := c.QueryContent(ctx, contentType.ID, &QueryOptions{
			Title:  term,
			Status: &published,
			Limit:  perType,
		})
		results = append(results, typeResult{contentType: contentType.ID, nodes: nodes, err: err})
	}
	return c.mergeResults(results, limit), nil
}

// mergeResults concatenates successful results in order, drops failures and
// truncates the concatenation to limit.
func (c *Client) mergeResults(results []typeResult, limit int) []Node {
	var skipped *multierror.Error
	merged := make([]Node, 0, limit)
	for _, result := range results {
		if result.err != nil {
			skipped = multierror.Append(skipped, fmt.Errorf("%s: %w", result.contentType, result.err))
			continue
		}
		merged = append(merged, result.nodes...)
	}
	if skipped != nil {
		c.logger.Debug("search skipped content types", "count", len(skipped.Errors), "error", skipped.Error())
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
