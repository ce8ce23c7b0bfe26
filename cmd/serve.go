package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches the MCP server. Stdio is the default transport; --http
// serves the same tools over HTTP instead.
type ServeCmd struct {
	HTTP string `long:"http" description:"serve over HTTP on the given address (e.g. :5000) instead of stdio"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	logger := svc.Logger()

	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if c.HTTP == "" {
		logger.Info("drupal MCP server running on stdio", "site", svc.Client().BaseURL())
		return mcpServer.Stdio(ctx).ListenAndServe()
	}

	httpSrv := mcpServer.HTTP(ctx, c.HTTP)
	errs := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()
	logger.Info("drupal MCP server listening", "addr", httpSrv.Addr, "site", svc.Client().BaseURL())

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	return httpSrv.Close()
}
