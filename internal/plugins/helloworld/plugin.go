// Package helloworld is the example launcher plugin: it greets every query
// and offers a single context menu entry echoing the attached data.
package helloworld

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/flow-launcher/helloworld-go/internal/core/domain"
	"github.com/flow-launcher/helloworld-go/internal/core/ports"
	"github.com/flow-launcher/helloworld-go/internal/i18n"
	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

const (
	// DefaultIcon is relative to the plugin directory
	DefaultIcon = "Images/app.ico"

	// ContextData is attached to every query result
	ContextData = "ctxData"

	// languageSetting is the plugin setting the launcher may send with a request
	languageSetting = "language"
)

// Plugin answers the query and context_menu hooks
type Plugin struct {
	catalog *i18n.Catalog
	icon    string
	logger  *zap.Logger
}

// New creates the plugin. An empty icon uses DefaultIcon.
func New(catalog *i18n.Catalog, icon string, logger *zap.Logger) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = i18n.NewCatalog(logger)
	}
	if icon == "" {
		icon = DefaultIcon
	}
	return &Plugin{catalog: catalog, icon: icon, logger: logger}
}

// Name returns the plugin name in the active language
func (p *Plugin) Name() string {
	return p.catalog.Translate(i18n.KeyPluginName)
}

// Description returns the plugin description in the active language
func (p *Plugin) Description() string {
	return p.catalog.Translate(i18n.KeyPluginDesc)
}

// Query returns the greeting for query
func (p *Plugin) Query(ctx context.Context, query string) []domain.Result {
	return []domain.Result{{
		Title:       p.catalog.Translate(i18n.KeyTitle),
		SubTitle:    p.catalog.Translatef(i18n.KeyQuerySubTitle, query),
		IcoPath:     p.icon,
		ContextData: ContextData,
	}}
}

// ContextMenu returns the single context menu entry for data
func (p *Plugin) ContextMenu(ctx context.Context, data string) []domain.Result {
	return []domain.Result{{
		Title:    p.catalog.Translate(i18n.KeyContextMenuTitle),
		SubTitle: p.catalog.Translatef(i18n.KeyContextSubTitle, data),
		IcoPath:  p.icon,
	}}
}

// Register binds the plugin hooks on registry
func (p *Plugin) Register(registry ports.HandlerRegistry) error {
	if err := registry.Register(jsonrpc.MethodQuery, p.handleQuery); err != nil {
		return errors.Wrap(err, "failed to register query hook")
	}
	if err := registry.Register(jsonrpc.MethodContextMenu, p.handleContextMenu); err != nil {
		return errors.Wrap(err, "failed to register context menu hook")
	}
	return nil
}

func (p *Plugin) handleQuery(ctx context.Context, req *jsonrpc.Request) ([]domain.Result, error) {
	p.applySettings(req)
	return p.Query(ctx, req.StringParam(0)), nil
}

func (p *Plugin) handleContextMenu(ctx context.Context, req *jsonrpc.Request) ([]domain.Result, error) {
	p.applySettings(req)
	return p.ContextMenu(ctx, req.StringParam(0)), nil
}

func (p *Plugin) applySettings(req *jsonrpc.Request) {
	code, ok := req.Setting(languageSetting)
	if !ok || code == "" || code == p.catalog.Language().Code {
		return
	}
	lang := p.catalog.ChangeLanguage(code)
	p.logger.Debug("language changed by launcher settings", zap.String("code", lang.Code))
}

var _ ports.Plugin = (*Plugin)(nil)
