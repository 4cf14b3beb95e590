package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	zedextension "github.com/dbops-mcp/zed-extension"
	"github.com/dbops-mcp/zed-extension/internal/errortypes"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [server-id]",
	Short: "Print the launch command for a context server",
	Long: `resolve installs the extension and prints, as JSON, the command
descriptor the host would receive for the given context server id.
The descriptor is identical for every id.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ext, err := zedextension.New(zedextension.Options{Config: cfg})
	if err != nil {
		errortypes.LogError(nil, err)
		return err
	}

	id := zedextension.ContextServerID(ext.Name())
	if len(args) == 1 {
		id = zedextension.ContextServerID(args[0])
	}

	descriptor, err := ext.ContextServerCommand(id, nil)
	if err != nil {
		errortypes.LogError(nil, err)
		return err
	}

	out, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		return errortypes.InternalError(err, "failed to encode command descriptor")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
