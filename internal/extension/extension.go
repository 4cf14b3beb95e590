// Package extension implements the editor extension that tells the host
// how to launch the database-operations context server.
package extension

import (
	"log/slog"

	"github.com/dbops-mcp/zed-extension/internal/command"
)

// DefaultName is the name the extension registers under when the
// configuration does not override it.
const DefaultName = "database-operations"

// ContextServerID is the opaque identifier of a context server the host
// is asking about.
type ContextServerID string

// Project is the host-supplied handle for the workspace the context
// server will run against.
type Project struct {
	// WorktreeRoot is the root directory of the host's active worktree,
	// when the host provides one.
	WorktreeRoot string
}

// Extension is the contract the host invokes to resolve launch commands
// for the context servers an extension provides.
type Extension interface {
	// ContextServerCommand returns the command the host should run to
	// start the context server identified by id within project.
	ContextServerCommand(id ContextServerID, project *Project) (command.Command, error)
}

// DBOpsExtension launches the database-operations MCP server through
// the uv package runner. It holds no state; the host may call it from
// any scheduling model.
type DBOpsExtension struct{}

// New creates a new DBOpsExtension instance.
func New() *DBOpsExtension {
	return &DBOpsExtension{}
}

// ContextServerCommand returns the fixed command line that starts the
// database-operations MCP server: uv runs the project in its current
// directory in server mode. The result is identical for every id and
// project, and the returned descriptor is owned by the caller.
func (e *DBOpsExtension) ContextServerCommand(id ContextServerID, project *Project) (command.Command, error) {
	slog.Debug("Resolving context server command", "id", string(id))

	return command.Command{
		Executable: "uv",
		Args:       []string{"run", "--project", ".", "--mcp"},
		Env:        map[string]string{},
	}, nil
}
