package mcp

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"github.com/viant/drupal-mcp/drupal"
	"github.com/viant/drupal-mcp/mcp/config"
	"github.com/viant/drupal-mcp/mcp/tool"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
)

// Service bundles configuration, the Drupal client, the tool registry and a
// Fluxor workflow engine. Bootstrap lives in bootstrap.go.
type Service struct {
	Workflow
	started    int32
	config     *config.Config
	logger     hclog.Logger
	httpClient *http.Client
	client     *drupal.Client
	registry   *tool.Registry
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service that exposes all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// Client returns the Drupal client.
func (s *Service) Client() *drupal.Client { return s.client }

// Registry returns the tool registry.
func (s *Service) Registry() *tool.Registry { return s.registry }

// Logger returns the service logger.
func (s *Service) Logger() hclog.Logger { return s.logger }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration. When omitted the configuration is
// derived from the environment only.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger sets the logger. By default the service logs to stderr.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithHTTPClient overrides the http.Client used to reach Drupal.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

// WithWorkflowOptions appends Fluxor options used when the workflow engine
// gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers additional Fluxor services.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// New constructs a service; see init in bootstrap.go.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the Fluxor runtime. Subsequent calls are ignored. The MCP
// tools do not depend on the runtime; only actions and workflows do.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime if it was started.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
