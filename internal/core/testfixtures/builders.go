package testfixtures

import (
	"encoding/json"

	"github.com/flow-launcher/helloworld-go/internal/core/domain"
	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

// RequestBuilder provides a builder pattern for launcher requests
type RequestBuilder struct {
	method     string
	parameters []any
	settings   map[string]any
}

// NewRequestBuilder creates a query request with no parameters
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		method:     jsonrpc.MethodQuery,
		parameters: []any{},
	}
}

// WithMethod sets the request method
func (b *RequestBuilder) WithMethod(method string) *RequestBuilder {
	b.method = method
	return b
}

// WithParams appends positional parameters
func (b *RequestBuilder) WithParams(params ...any) *RequestBuilder {
	b.parameters = append(b.parameters, params...)
	return b
}

// WithSetting adds a plugin setting sent by the launcher
func (b *RequestBuilder) WithSetting(key string, value any) *RequestBuilder {
	if b.settings == nil {
		b.settings = map[string]any{}
	}
	b.settings[key] = value
	return b
}

// Raw returns the request exactly as the launcher would send it
func (b *RequestBuilder) Raw() []byte {
	payload := map[string]any{
		"method":     b.method,
		"parameters": b.parameters,
	}
	if b.settings != nil {
		payload["settings"] = b.settings
	}
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return data
}

// Build parses the request, panicking on invalid input
func (b *RequestBuilder) Build() *jsonrpc.Request {
	req, err := jsonrpc.ParseRequest(b.Raw())
	if err != nil {
		panic(err)
	}
	return req
}

// ResultBuilder provides a builder pattern for results
type ResultBuilder struct {
	result domain.Result
}

// NewResultBuilder creates a result with sensible defaults
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{result: domain.Result{
		Title:   "Test Result",
		IcoPath: "Images/app.ico",
	}}
}

// WithTitle sets the title
func (b *ResultBuilder) WithTitle(title string) *ResultBuilder {
	b.result.Title = title
	return b
}

// WithSubTitle sets the subtitle
func (b *ResultBuilder) WithSubTitle(subTitle string) *ResultBuilder {
	b.result.SubTitle = subTitle
	return b
}

// WithContextData attaches context menu data
func (b *ResultBuilder) WithContextData(data any) *ResultBuilder {
	b.result.ContextData = data
	return b
}

// WithAction sets the action run when the result is picked
func (b *ResultBuilder) WithAction(method string, params ...any) *ResultBuilder {
	b.result.JsonRPCAction = domain.NewAction(method, params...)
	return b
}

// Build returns the result
func (b *ResultBuilder) Build() domain.Result {
	return b.result
}
