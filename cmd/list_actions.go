package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/viant/fluxor/extension"
	"github.com/viant/fluxor/model/types"
)

// ListActionsCmd prints every Fluxor service and its action methods.
type ListActionsCmd struct{}

func (c *ListActionsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	printActions(os.Stdout, svc.WorkflowService().Actions())
	return nil
}

// printActions writes services and their methods, both sorted by name.
func printActions(w io.Writer, actions *extension.Actions) {
	names := actions.Services()
	sort.Strings(names)
	for _, name := range names {
		s := actions.Lookup(name)
		if s == nil {
			continue
		}
		methods := append(types.Signatures{}, s.Methods()...)
		sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
		fmt.Fprintln(w, name)
		for _, sig := range methods {
			fmt.Fprintf(w, "  %s\t%s\n", sig.Name, sig.Description)
		}
	}
}
