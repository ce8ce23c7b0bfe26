package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// RunCmd runs a Fluxor workflow whose tasks may call the drupal actions,
// e.g. action: drupal:search.
type RunCmd struct {
	Location   string `short:"l" long:"location" description:"workflow definition URL or path (YAML)" required:"yes"`
	State      string `short:"s" long:"state" description:"JSON object with initial state"`
	TimeoutSec int    `long:"timeout" description:"seconds to wait for completion" default:"120"`
}

func (c *RunCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start runtime: %w", err)
	}
	defer func() { _ = svc.Shutdown(ctx) }()

	rt := svc.WorkflowRuntime()
	wf, err := rt.LoadWorkflow(ctx, c.Location)
	if err != nil {
		return fmt.Errorf("load workflow: %w", err)
	}

	initState := make(map[string]interface{})
	if c.State != "" {
		if err := json.Unmarshal([]byte(c.State), &initState); err != nil {
			return fmt.Errorf("decode initial state: %w", err)
		}
	}

	process, wait, err := rt.StartProcess(ctx, wf, initState)
	if err != nil {
		return fmt.Errorf("start process: %w", err)
	}
	output, err := wait(ctx, time.Duration(c.TimeoutSec)*time.Second)
	if err != nil {
		return fmt.Errorf("wait for process: %w", err)
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	fmt.Println(string(data))
	svc.Logger().Info("workflow completed", "process", process.ID)
	return nil
}
