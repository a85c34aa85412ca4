package services

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/flow-launcher/helloworld-go/internal/core/domain"
	"github.com/flow-launcher/helloworld-go/internal/core/ports"
	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

var (
	ErrUnknownMethod     = errors.New("unknown method")
	ErrDuplicateHandler  = errors.New("handler already registered")
	ErrInvalidHandlerArg = errors.New("invalid handler registration")
)

// PluginHost routes launcher requests to the registered plugin handlers
type PluginHost struct {
	handlers map[string]ports.Handler
	logger   *zap.Logger
}

// NewPluginHost creates an empty host
func NewPluginHost(logger *zap.Logger) *PluginHost {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PluginHost{
		handlers: make(map[string]ports.Handler),
		logger:   logger,
	}
}

// Register binds method to handler
func (h *PluginHost) Register(method string, handler ports.Handler) error {
	if method == "" || handler == nil {
		return errors.Wrapf(ErrInvalidHandlerArg, "method %q", method)
	}
	if _, exists := h.handlers[method]; exists {
		return errors.Wrapf(ErrDuplicateHandler, "method %q", method)
	}
	h.handlers[method] = handler
	return nil
}

// Methods returns the registered method names in order
func (h *PluginHost) Methods() []string {
	methods := make([]string, 0, len(h.handlers))
	for m := range h.handlers {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// Dispatch invokes the handler for req. The returned list is never nil.
func (h *PluginHost) Dispatch(ctx context.Context, req *jsonrpc.Request) ([]domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return []domain.Result{}, errors.Wrap(err, "request cancelled")
	}

	handler, ok := h.handlers[req.Method()]
	if !ok {
		return []domain.Result{}, errors.Wrapf(ErrUnknownMethod, "%s", req.Method())
	}

	start := time.Now()
	results, err := handler(ctx, req)
	if err != nil {
		h.logger.Error("handler failed",
			zap.String("method", req.Method()),
			zap.Error(err))
		return []domain.Result{}, errors.Wrapf(err, "%s failed", req.Method())
	}

	results = domain.NonNil(results)
	for _, r := range results {
		if verr := r.Validate(); verr != nil {
			h.logger.Warn("handler returned an invalid result",
				zap.String("method", req.Method()),
				zap.Error(verr))
		}
	}

	h.logger.Debug("dispatched",
		zap.String("method", req.Method()),
		zap.Int("params", req.ParamCount()),
		zap.Int("results", len(results)),
		zap.Duration("duration", time.Since(start)))

	return results, nil
}

// Serve handles one raw launcher request and writes the response to w.
// Failures are reported to the launcher through debugMessage and returned.
func (h *PluginHost) Serve(ctx context.Context, raw []byte, w io.Writer) error {
	req, err := jsonrpc.ParseRequest(raw)
	if err != nil {
		h.logger.Error("failed to parse request", zap.Error(err), zap.ByteString("raw", raw))
		if werr := jsonrpc.WriteResponse(w, jsonrpc.NewErrorResponse(err)); werr != nil {
			return errors.CombineErrors(err, werr)
		}
		return err
	}

	results, err := h.Dispatch(ctx, req)
	if err != nil {
		if werr := jsonrpc.WriteResponse(w, jsonrpc.NewErrorResponse(err)); werr != nil {
			return errors.CombineErrors(err, werr)
		}
		return err
	}

	return jsonrpc.WriteResponse(w, jsonrpc.NewResponse(results))
}

var _ ports.HandlerRegistry = (*PluginHost)(nil)
