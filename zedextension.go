// Package zedextension wires the database-operations editor extension
// together: it loads configuration, constructs the adapter, and makes
// the single explicit registration call the host expects at startup.
package zedextension

import (
	"log/slog"

	"github.com/localrivet/gomcp/logx"

	"github.com/dbops-mcp/zed-extension/internal/command"
	"github.com/dbops-mcp/zed-extension/internal/config"
	"github.com/dbops-mcp/zed-extension/internal/errortypes"
	"github.com/dbops-mcp/zed-extension/internal/extension"
	"github.com/dbops-mcp/zed-extension/internal/registry"
)

// Config represents the configuration for the extension.
type Config = config.Config

// ContextServerID is the opaque identifier of a context server.
type ContextServerID = extension.ContextServerID

// Project is the host-supplied workspace handle.
type Project = extension.Project

// Extension is the installed database-operations extension: the adapter
// plus the configuration it was registered with.
type Extension struct {
	config     *config.Config
	adapter    *extension.DBOpsExtension
	logger     *slog.Logger
	hostLogger logx.Logger
}

// Options defines the options for installing the extension.
type Options struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// New installs the extension with the given options: configuration is
// resolved, the adapter is constructed, and it is registered with the
// host registry under its configured name.
func New(opts Options) (*Extension, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Info("Using provided Config object for extension installation")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for extension installation", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Warn("No Config object or ConfigPath provided, using default configuration")
		cfg = DefaultConfig()
	}

	adapter := extension.New()

	// Host-facing events go through the logx logger built from the
	// configured level.
	hostLogger := config.GetLoggerFromConfig(cfg)

	if err := registry.Register(cfg.Extension.Name, adapter); err != nil {
		logger.Error("Failed to register extension", "name", cfg.Extension.Name, "error", err)
		return nil, err
	}

	logger.Info("Extension installed", "name", cfg.Extension.Name)
	return &Extension{
		config:     cfg,
		adapter:    adapter,
		logger:     logger,
		hostLogger: hostLogger,
	}, nil
}

// DefaultConfig returns the default configuration for the extension.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// Name returns the name the extension is registered under.
func (e *Extension) Name() string {
	return e.config.Extension.Name
}

// Config returns the configuration the extension was installed with.
func (e *Extension) Config() *Config {
	return e.config
}

// ContextServerCommand resolves the launch command for the context
// server identified by id within project.
func (e *Extension) ContextServerCommand(id ContextServerID, project *Project) (command.Command, error) {
	e.hostLogger.Info("Resolving context server command", "server_id", string(id))
	return e.adapter.ContextServerCommand(id, project)
}
