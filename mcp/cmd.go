package mcp

import (
	"github.com/ka2n/mado/api"
	"github.com/ka2n/mado/config"
	"github.com/spf13/cobra"
)

// Command returns the MCP server command. The configuration loader is
// injected so the command picks up the caller's flag overrides.
func Command(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gw := api.NewRESTGateway(cfg.Endpoint, cfg.Timeout())
			return NewServer(gw).Run()
		},
	}
}
