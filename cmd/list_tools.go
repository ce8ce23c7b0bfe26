package cmd

import (
	"fmt"

	"github.com/viant/drupal-mcp/internal/conv"
)

// ListToolsCmd prints the registered tools in catalog order.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"name filter: exact, prefix* or *" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, t := range svc.MatchTools(c.Pattern) {
		fmt.Printf("%s\t%s\n", t.Metadata.Name, conv.Dereference[string](t.Metadata.Description))
	}
	return nil
}
