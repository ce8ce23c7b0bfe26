package action

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/drupal-mcp/drupal"
	"github.com/viant/drupal-mcp/internal/conv"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
)

// Name is the Fluxor service name.
const Name = "drupal"

// Content is the Drupal client surface used by the actions.
type Content interface {
	QueryContent(ctx context.Context, contentType string, options *drupal.QueryOptions) ([]drupal.Node, error)
	GetNode(ctx context.Context, nodeID string, include []string) (*drupal.Node, error)
	ListContentTypes(ctx context.Context) ([]drupal.ContentType, error)
	SearchContent(ctx context.Context, term string, limit int) ([]drupal.Node, error)
}

type QueryInput struct {
	ContentType string `json:"contentType" description:"content type machine name"`
	Limit       int    `json:"limit,omitempty" description:"page size, defaults to 10"`
	Title       string `json:"title,omitempty" description:"title contains filter"`
	Status      *bool  `json:"status,omitempty" description:"publication status filter"`
}

type GetInput struct {
	NodeID  string   `json:"nodeId" description:"node UUID"`
	Include []string `json:"include,omitempty" description:"relationships to include"`
}

type ListTypesInput struct{}

type SearchInput struct {
	SearchTerm string `json:"searchTerm" description:"text searched in titles"`
	Limit      int    `json:"limit,omitempty" description:"maximum results, defaults to 10"`
}

type NodesOutput struct {
	Nodes []drupal.Node `json:"nodes"`
}

type NodeOutput struct {
	Node *drupal.Node `json:"node,omitempty"`
}

type TypesOutput struct {
	Types []drupal.ContentType `json:"types"`
}

// Service implements types.Service on top of a Drupal client.
type Service struct {
	content   Content
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New builds the action service.
func New(content Content) *Service {
	s := &Service{content: content, executors: map[string]types.Executable{}}

	s.register("query", "Query nodes of a content type", &QueryInput{}, &NodesOutput{},
		func(ctx context.Context, input interface{}) (interface{}, error) {
			in := input.(*QueryInput)
			if in.ContentType == "" {
				return nil, fmt.Errorf("contentType is required")
			}
			nodes, err := s.content.QueryContent(ctx, in.ContentType, &drupal.QueryOptions{Limit: in.Limit, Title: in.Title, Status: in.Status})
			if err != nil {
				return nil, err
			}
			return &NodesOutput{Nodes: nodes}, nil
		})

	s.register("get", "Get a node by id", &GetInput{}, &NodeOutput{},
		func(ctx context.Context, input interface{}) (interface{}, error) {
			in := input.(*GetInput)
			if in.NodeID == "" {
				return nil, fmt.Errorf("nodeId is required")
			}
			node, err := s.content.GetNode(ctx, in.NodeID, in.Include)
			if err != nil {
				return nil, err
			}
			return &NodeOutput{Node: node}, nil
		})

	s.register("listTypes", "List content types", &ListTypesInput{}, &TypesOutput{},
		func(ctx context.Context, _ interface{}) (interface{}, error) {
			contentTypes, err := s.content.ListContentTypes(ctx)
			if err != nil {
				return nil, err
			}
			return &TypesOutput{Types: contentTypes}, nil
		})

	s.register("search", "Search published nodes by title across content types", &SearchInput{}, &NodesOutput{},
		func(ctx context.Context, input interface{}) (interface{}, error) {
			in := input.(*SearchInput)
			nodes, err := s.content.SearchContent(ctx, in.SearchTerm, in.Limit)
			if err != nil {
				return nil, err
			}
			return &NodesOutput{Nodes: nodes}, nil
		})
	return s
}

// register adds one action; call receives input already coerced to the type
// of in.
func (s *Service) register(name, description string, in, out interface{}, call func(ctx context.Context, input interface{}) (interface{}, error)) {
	inType := reflect.TypeOf(in)
	s.sigs = append(s.sigs, types.Signature{
		Name:        name,
		Description: description,
		Input:       inType,
		Output:      reflect.TypeOf(out),
	})
	s.executors[name] = func(ctx context.Context, input, output interface{}) error {
		param := reflect.New(inType.Elem()).Interface()
		if input != nil {
			if reflect.TypeOf(input) == inType {
				param = input
			} else if err := conv.Convert(input, param); err != nil {
				return fmt.Errorf("%s.%s: invalid input: %w", Name, name, err)
			}
		}
		res, err := call(ctx, param)
		if err != nil {
			return err
		}
		if output != nil {
			switch outPtr := output.(type) {
			case *interface{}:
				*outPtr = res
			default:
				if reflect.TypeOf(res) == reflect.TypeOf(output) {
					reflect.ValueOf(output).Elem().Set(reflect.ValueOf(res).Elem())
					return nil
				}
				return conv.Convert(res, outPtr)
			}
		}
		return nil
	}
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Types returns the action input/output types so that workflow definitions
// can reference them by name.
func Types() []*x.Type {
	return []*x.Type{
		x.NewType(reflect.TypeOf(QueryInput{})),
		x.NewType(reflect.TypeOf(GetInput{})),
		x.NewType(reflect.TypeOf(SearchInput{})),
		x.NewType(reflect.TypeOf(NodesOutput{})),
		x.NewType(reflect.TypeOf(NodeOutput{})),
		x.NewType(reflect.TypeOf(TypesOutput{})),
	}
}
