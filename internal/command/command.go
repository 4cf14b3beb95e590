// Package command defines the descriptor the host receives when it asks
// how to launch a context server process.
package command

import (
	"errors"
	"strings"

	"github.com/dbops-mcp/zed-extension/internal/errortypes"
)

// Command describes how to launch a context server: the executable to
// invoke, its arguments in order, and any extra environment variables.
// The host owns a Command after it is returned; resolving never hands
// out shared state.
type Command struct {
	// Executable is the name of the program to invoke.
	Executable string `json:"executable"`

	// Args are the arguments passed to the executable, in order.
	Args []string `json:"args"`

	// Env maps environment variable names to values set for the
	// launched process, in addition to the host's own environment.
	Env map[string]string `json:"env"`
}

// New creates a Command for the given executable and arguments with an
// empty environment.
func New(executable string, args ...string) Command {
	return Command{
		Executable: executable,
		Args:       args,
		Env:        map[string]string{},
	}
}

// Clone returns a deep copy of the command. Mutating the copy does not
// affect the original.
func (c Command) Clone() Command {
	out := Command{
		Executable: c.Executable,
		Args:       make([]string, len(c.Args)),
		Env:        make(map[string]string, len(c.Env)),
	}
	copy(out.Args, c.Args)
	for k, v := range c.Env {
		out.Env[k] = v
	}
	return out
}

// Argv returns the executable followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Executable)
	return append(argv, c.Args...)
}

// String renders the command the way it would appear on a shell line.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Validate checks that the command names an executable. Hosts reject
// descriptors that cannot identify a program to launch.
func (c Command) Validate() error {
	if c.Executable == "" {
		return errortypes.ValidationError(errors.New("executable is empty"), "invalid command descriptor")
	}
	return nil
}
