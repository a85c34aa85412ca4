package di

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/flow-launcher/helloworld-go/internal/application/services"
	"github.com/flow-launcher/helloworld-go/internal/config"
	"github.com/flow-launcher/helloworld-go/internal/i18n"
	"github.com/flow-launcher/helloworld-go/internal/interfaces/cli"
	"github.com/flow-launcher/helloworld-go/internal/logging"
	"github.com/flow-launcher/helloworld-go/internal/plugins/helloworld"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Metadata *config.Metadata

	Catalog *i18n.Catalog
	Host    *services.PluginHost
	Plugin  *helloworld.Plugin

	CLIContainer *cli.CLIContainer

	Logger *zap.Logger
}

// NewContainer creates the container from the process environment
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig creates the container for an already loaded configuration
// Invalid fields fall back to their defaults one by one; the rest is kept.
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	cfg, problems := config.NewValidator().Sanitize(cfg)

	logger, err := logging.NewLogger(cfg.LogFile, cfg.LogLevel, cfg.Debug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	for _, problem := range problems {
		logger.Warn("invalid configuration value, using default", zap.Error(problem))
	}

	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	if err := container.initializeComponents(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize components")
	}

	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents() error {
	// 1. Plugin manifest
	meta, err := config.LoadMetadata(c.Config.PluginDir)
	switch {
	case err == nil:
		c.Metadata = meta
	case errors.Is(err, config.ErrMetadataNotFound):
		c.Logger.Debug("running without plugin metadata", zap.String("dir", c.Config.PluginDir))
	default:
		c.Logger.Warn("failed to load plugin metadata", zap.Error(err))
	}

	// 2. Translations
	c.Catalog = i18n.NewCatalog(c.Logger, c.Config.PluginDir)
	c.Catalog.ChangeLanguage(c.Config.Language)

	// 3. Plugin and host
	c.Plugin = helloworld.New(c.Catalog, c.Config.ResolveIcon(), c.Logger)
	c.Host = services.NewPluginHost(c.Logger)
	if err := c.Plugin.Register(c.Host); err != nil {
		return err
	}

	// 4. CLI container
	c.CLIContainer = &cli.CLIContainer{
		Config:   c.Config,
		Metadata: c.Metadata,
		Catalog:  c.Catalog,
		Host:     c.Host,
		Plugin:   c.Plugin,
		Logger:   c.Logger,
	}

	c.Logger.Debug("container initialized",
		zap.String("language", c.Catalog.Language().Code),
		zap.Strings("methods", c.Host.Methods()))
	return nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown(ctx context.Context) error {
	if c.Logger == nil {
		return nil
	}
	// Sync fails on some platforms for non-file sinks; nothing to recover.
	_ = c.Logger.Sync()
	return nil
}
