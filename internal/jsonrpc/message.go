package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/flow-launcher/helloworld-go/internal/core/domain"
)

// Well-known hook methods the launcher invokes
const (
	MethodQuery       = "query"
	MethodContextMenu = "context_menu"
)

var (
	ErrInvalidRequest = errors.New("invalid JSON-RPC request")
	ErrMissingMethod  = errors.New("JSON-RPC request has no method")
)

// Request is a single call from the launcher to the plugin
type Request struct {
	method     string
	parameters []json.RawMessage
	settings   map[string]any
	raw        json.RawMessage
}

// wireRequest is the shape the launcher sends
type wireRequest struct {
	Method     string            `json:"method"`
	Parameters []json.RawMessage `json:"parameters"`
	Settings   map[string]any    `json:"settings,omitempty"`
}

// NewRequest builds a request from Go values, mostly for local tooling
func NewRequest(method string, params ...any) (*Request, error) {
	raw := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		data, err := json.Marshal(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode parameter %d", i)
		}
		raw = append(raw, data)
	}

	payload, err := json.Marshal(wireRequest{Method: method, Parameters: raw})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}
	return ParseRequest(payload)
}

// ParseRequest parses the raw request the launcher passed to the plugin
func ParseRequest(rawData []byte) (*Request, error) {
	rawData = bytes.TrimSpace(rawData)
	if len(rawData) == 0 {
		return nil, errors.Mark(errors.New("invalid JSON-RPC request: empty payload"), ErrInvalidRequest)
	}

	var msg wireRequest
	if err := json.Unmarshal(rawData, &msg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid JSON-RPC request"), ErrInvalidRequest)
	}

	if strings.TrimSpace(msg.Method) == "" {
		return nil, ErrMissingMethod
	}

	if msg.Parameters == nil {
		msg.Parameters = []json.RawMessage{}
	}

	return &Request{
		method:     msg.Method,
		parameters: msg.Parameters,
		settings:   msg.Settings,
		raw:        append(json.RawMessage(nil), rawData...),
	}, nil
}

// Method returns the hook name
func (r *Request) Method() string {
	return r.method
}

// ParamCount returns the number of positional parameters
func (r *Request) ParamCount() int {
	return len(r.parameters)
}

// StringParam returns parameter i as a string.
// Missing parameters yield "", JSON strings are unquoted and any other value
// is returned as its JSON text.
func (r *Request) StringParam(i int) string {
	if i < 0 || i >= len(r.parameters) {
		return ""
	}
	param := r.parameters[i]

	var s string
	if err := json.Unmarshal(param, &s); err == nil {
		return s
	}
	if bytes.Equal(bytes.TrimSpace(param), []byte("null")) {
		return ""
	}
	return string(param)
}

// Setting returns a host-provided plugin setting as a string
func (r *Request) Setting(key string) (string, bool) {
	v, ok := r.settings[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Raw returns a copy of the original payload
func (r *Request) Raw() json.RawMessage {
	return append(json.RawMessage(nil), r.raw...)
}

// String returns a human-readable representation of the request
func (r *Request) String() string {
	return fmt.Sprintf("%s(%d params)", r.method, len(r.parameters))
}

// Response is what the plugin prints back to the launcher
type Response struct {
	Result       []domain.Result `json:"result"`
	DebugMessage string          `json:"debugMessage,omitempty"`
}

// NewResponse wraps results, never producing a null result list
func NewResponse(results []domain.Result) *Response {
	return &Response{Result: domain.NonNil(results)}
}

// NewErrorResponse reports err to the launcher with an empty result list
func NewErrorResponse(err error) *Response {
	resp := NewResponse(nil)
	if err != nil {
		resp.DebugMessage = err.Error()
	}
	return resp
}

// WriteResponse encodes resp as a single JSON line
func WriteResponse(w io.Writer, resp *Response) error {
	if resp == nil {
		resp = NewResponse(nil)
	}
	resp.Result = domain.NonNil(resp.Result)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return errors.Wrap(err, "failed to write response")
	}
	return nil
}
