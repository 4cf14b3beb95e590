package main

import (
	"fmt"

	"github.com/spf13/cobra"

	zedextension "github.com/dbops-mcp/zed-extension"
	"github.com/dbops-mcp/zed-extension/internal/errortypes"
	"github.com/dbops-mcp/zed-extension/internal/registry"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List registered extension names",
	RunE:  runServers,
}

func init() {
	rootCmd.AddCommand(serversCmd)
}

func runServers(cmd *cobra.Command, args []string) error {
	// Install under the configured name unless something already did.
	if _, ok := registry.Lookup(cfg.Extension.Name); !ok {
		if _, err := zedextension.New(zedextension.Options{Config: cfg}); err != nil {
			errortypes.LogError(nil, err)
			return err
		}
	}

	for _, name := range registry.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
