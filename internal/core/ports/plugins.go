package ports

import (
	"context"

	"github.com/flow-launcher/helloworld-go/internal/core/domain"
	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

// Handler answers a single launcher method
type Handler func(ctx context.Context, req *jsonrpc.Request) ([]domain.Result, error)

// Plugin represents a launcher plugin that answers the host hooks
type Plugin interface {
	// Name returns the plugin name
	Name() string

	// Description returns a one-line summary shown by local tooling
	Description() string

	// Query is called with the text the user typed
	Query(ctx context.Context, query string) []domain.Result

	// ContextMenu is called with the ContextData of the selected result
	ContextMenu(ctx context.Context, data string) []domain.Result
}

// HandlerRegistry binds method names to handlers
type HandlerRegistry interface {
	Register(method string, handler Handler) error
}
