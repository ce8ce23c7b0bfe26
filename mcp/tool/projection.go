package tool

import "github.com/viant/drupal-mcp/drupal"

const (
	statusPublished   = "published"
	statusUnpublished = "unpublished"
)

// Summary is the reduced view of a node returned by the listing tools.
type Summary struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Created string `json:"created,omitempty"`
	Changed string `json:"changed,omitempty"`
}

func summarize(node *drupal.Node, withDates bool) Summary {
	ret := Summary{
		ID:     node.ID,
		Title:  node.Attributes.Title(),
		Type:   node.Type,
		Status: statusUnpublished,
	}
	if node.Attributes.Status() {
		ret.Status = statusPublished
	}
	if withDates {
		ret.Created = node.Attributes.Created()
		ret.Changed = node.Attributes.Changed()
	}
	return ret
}

func summarizeAll(nodes []drupal.Node, withDates bool) []Summary {
	ret := make([]Summary, 0, len(nodes))
	for i := range nodes {
		ret = append(ret, summarize(&nodes[i], withDates))
	}
	return ret
}
