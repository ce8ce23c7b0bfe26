package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/viant/drupal-mcp/drupal"
	"github.com/viant/drupal-mcp/mcp/action"
	"github.com/viant/drupal-mcp/mcp/config"
	"github.com/viant/drupal-mcp/mcp/tool"
	"github.com/viant/fluxor"
)

// init orchestrates the bootstrap: defaults, validation, Drupal client, tool
// registry and workflow engine.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var err error
	s.client, err = drupal.New(s.config.Drupal,
		drupal.WithHTTPClient(s.httpClient),
		drupal.WithLogger(s.logger.Named("drupal")))
	if err != nil {
		return err
	}
	s.registry = tool.Catalog(s.client, s.logger.Named("tool"))
	s.initWorkflowService()
	s.logger.Debug("service initialised", "site", s.client.BaseURL(), "tools", len(s.registry.Entries()))
	return nil
}

// initDefaults applies fall-back values for optional dependencies.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.ApplyEnv(os.Getenv)
	if s.logger == nil {
		s.logger = hclog.New(&hclog.LoggerOptions{
			Name:   "drupal-mcp",
			Level:  s.config.Level(),
			Output: os.Stderr,
		})
	}
}

// initWorkflowService assembles the Fluxor options and instantiates the
// engine with the Drupal actions and the selected builtins.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.Workflow.Options...)

	s.Workflow.Extensions = append(s.Workflow.Extensions, action.New(s.client))
	s.Workflow.Extensions = append(s.Workflow.Extensions, resolveBuiltinServices(s.config.Builtins)...)
	s.Workflow.ExtensionTypes = append(s.Workflow.ExtensionTypes, action.Types()...)

	opts = append(opts, fluxor.WithExtensionServices(s.Workflow.Extensions...))
	opts = append(opts, fluxor.WithExtensionTypes(s.Workflow.ExtensionTypes...))

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
