package main

import "github.com/viant/drupal-mcp/cmd"

func main() {
	cmd.Main()
}
