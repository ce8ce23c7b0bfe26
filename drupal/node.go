package drupal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is a JSON:API node resource. Attributes and relationships are kept as
// open bags so that site specific fields survive a round-trip unchanged.
type Node struct {
	Type          string                 `json:"type"`
	ID            string                 `json:"id"`
	Attributes    Attributes             `json:"attributes"`
	Relationships map[string]interface{} `json:"relationships,omitempty"`
	Links         map[string]interface{} `json:"links,omitempty"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// Attributes is the attribute bag of a node.
type Attributes map[string]interface{}

// Body is the formatted text of a node body field.
type Body struct {
	Value     string `json:"value"`
	Format    string `json:"format"`
	Processed string `json:"processed"`
}

func (a Attributes) Title() string   { return a.str("title") }
func (a Attributes) Created() string { return a.str("created") }
func (a Attributes) Changed() string { return a.str("changed") }

// Status reports whether the node is published. Drupal emits a boolean, some
// serializers emit 0/1.
func (a Attributes) Status() bool {
	switch v := a["status"].(type) {
	case bool:
		return v
	case json.Number:
		return v.String() != "0"
	case float64:
		return v != 0
	case string:
		return v == "1" || v == "true"
	}
	return false
}

// Body returns the body field, or nil when the node has none.
func (a Attributes) Body() *Body {
	raw, ok := a["body"].(map[string]interface{})
	if !ok {
		return nil
	}
	body := &Body{}
	body.Value, _ = raw["value"].(string)
	body.Format, _ = raw["format"].(string)
	body.Processed, _ = raw["processed"].(string)
	return body
}

func (a Attributes) str(key string) string {
	switch v := a[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ContentType describes a node bundle.
type ContentType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// document is the top level JSON:API envelope.
type document struct {
	Data     json.RawMessage   `json:"data"`
	Included []json.RawMessage `json:"included,omitempty"`
	Errors   []apiError        `json:"errors,omitempty"`
}

type apiError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// resources decodes data as a list, wrapping a single resource object.
func (d *document) resources(dest interface{}) error {
	data := bytes.TrimSpace(d.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		data = []byte("[]")
	} else if data[0] != '[' {
		wrapped := make([]byte, 0, len(data)+2)
		wrapped = append(wrapped, '[')
		wrapped = append(wrapped, data...)
		data = append(wrapped, ']')
	}
	return decode(data, dest)
}

// resource decodes data as a single resource object.
func (d *document) resource(dest interface{}) error {
	data := bytes.TrimSpace(d.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("response has no data")
	}
	return decode(data, dest)
}

func decode(data []byte, dest interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	return decoder.Decode(dest)
}

// contentTypeResource is the subset of a node_type--node_type resource we use.
type contentTypeResource struct {
	Attributes struct {
		InternalType string `json:"drupal_internal__type"`
		Name         string `json:"name"`
	} `json:"attributes"`
}
