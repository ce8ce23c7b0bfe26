package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/viant/drupal-mcp/internal/conv"
)

// CallCmd invokes a tool from the CLI. Arguments are supplied inline via
// -i/--input or loaded from a JSON file via --file (use - for stdin).
type CallCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"tool name" required:"yes"`
	Inline     string `short:"i" long:"input" description:"inline JSON arguments (object)"`
	File       string `long:"file" description:"path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"seconds to wait for the result" default:"60"`
}

func (c *CallCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}
	args, err := c.arguments()
	if err != nil {
		return err
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := svc.CallTool(ctx, c.Name, args)
	for _, content := range result.Content {
		fmt.Println(content.Text)
	}
	if conv.Dereference[bool](result.IsError) {
		return fmt.Errorf("tool %s failed", c.Name)
	}
	return nil
}

func (c *CallCmd) arguments() (map[string]interface{}, error) {
	var data []byte
	switch {
	case c.Inline != "":
		data = []byte(c.Inline)
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		var err error
		if data, err = io.ReadAll(rdr); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	default:
		return map[string]interface{}{}, nil
	}
	var args map[string]interface{}
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("decode JSON arguments: %w", err)
	}
	return args, nil
}
