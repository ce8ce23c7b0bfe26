package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON URL or path"`

	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the Drupal tools"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Call        *CallCmd        `command:"call"         description:"Invoke a tool and print its result"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Run         *RunCmd         `command:"run"          description:"Run a workflow using Drupal actions"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "call":
		o.Call = &CallCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "run":
		o.Run = &RunCmd{}
	}
}
