package cmd

import (
	"context"
	"sync"

	"github.com/viant/drupal-mcp/mcp"
	mcpconfig "github.com/viant/drupal-mcp/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the -f/--config parameter for serviceSingleton.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service once per CLI invocation. The
// environment overlays whatever the optional config file sets.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		cfg := &mcpconfig.Config{}
		if cfgPath != "" {
			if cfg, svcErr = mcpconfig.Load(ctx, cfgPath); svcErr != nil {
				return
			}
		}
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}
