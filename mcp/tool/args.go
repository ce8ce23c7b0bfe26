package tool

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"
)

// QueryContentArgs are the arguments of query_content. A non-positive Limit
// is left to the client, which falls back to drupal.DefaultLimit.
type QueryContentArgs struct {
	ContentType string `json:"contentType"`
	Limit       int    `json:"limit,omitempty"`
	Title       string `json:"title,omitempty"`
	Status      *bool  `json:"status,omitempty"`
}

func (a *QueryContentArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.ContentType, validation.Required),
	)
}

// GetNodeArgs are the arguments of get_node. NodeType is declared by the tool
// schema but the node is always fetched through the generic node path.
type GetNodeArgs struct {
	NodeType string   `json:"nodeType"`
	NodeID   string   `json:"nodeId"`
	Include  []string `json:"include,omitempty"`
}

func (a *GetNodeArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.NodeType, validation.Required),
		validation.Field(&a.NodeID, validation.Required),
	)
}

// SearchContentArgs are the arguments of search_content.
type SearchContentArgs struct {
	SearchTerm string `json:"searchTerm"`
	Limit      int    `json:"limit,omitempty"`
}

func (a *SearchContentArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.SearchTerm, validation.Required),
	)
}

// decodeArgs copies the raw argument bag into dest. JSON numbers and
// stringified scalars are coerced to the declared field types.
func decodeArgs(args map[string]interface{}, dest validation.Validatable) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := dest.Validate(); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
