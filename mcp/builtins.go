package mcp

import (
	"sort"

	"github.com/viant/drupal-mcp/mcp/matcher"
	"github.com/viant/fluxor/model/types"

	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// defaultBuiltins is used when the configuration does not list any.
var defaultBuiltins = []string{"printer"}

// builtinFactories lists the Fluxor action services workflows may use next to
// the drupal actions. Shell execution is deliberately absent.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/storage": func() types.Service { return storage.New() },
}

// resolveBuiltinServices instantiates the builtins selected by patterns, in
// name order, each at most once.
func resolveBuiltinServices(patterns []string) []types.Service {
	if len(patterns) == 0 {
		patterns = defaultBuiltins
	}
	names := make([]string, 0, len(builtinFactories))
	for name := range builtinFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []types.Service
	for _, name := range names {
		for _, pattern := range patterns {
			if matcher.Match(pattern, name) {
				out = append(out, builtinFactories[name]())
				break
			}
		}
	}
	return out
}
