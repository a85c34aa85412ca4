package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyTitle is returned when a result has nothing to display
var ErrEmptyTitle = errors.New("result title cannot be empty")

// HostAPIPrefix marks action methods that the launcher handles itself
// instead of calling back into the plugin.
const HostAPIPrefix = "Flow.Launcher."

// Result is a single row shown by the launcher.
// Field names are the ones the host expects on the wire.
type Result struct {
	Title         string  `json:"Title"`
	SubTitle      string  `json:"SubTitle"`
	IcoPath       string  `json:"IcoPath"`
	ContextData   any     `json:"ContextData,omitempty"`
	JsonRPCAction *Action `json:"JsonRPCAction,omitempty"`
	Score         int     `json:"Score,omitempty"`
}

// Action is invoked by the host when the user picks a result
type Action struct {
	Method              string `json:"method"`
	Parameters          []any  `json:"parameters"`
	DontHideAfterAction bool   `json:"dontHideAfterAction,omitempty"`
}

// NewAction creates an action calling method with the given parameters
func NewAction(method string, params ...any) *Action {
	if params == nil {
		params = []any{}
	}
	return &Action{Method: method, Parameters: params}
}

// IsHostAPI reports whether the launcher executes the action itself
func (a *Action) IsHostAPI() bool {
	return a != nil && strings.HasPrefix(a.Method, HostAPIPrefix)
}

// Validate checks the result can be rendered by the host
func (r Result) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.JsonRPCAction != nil && r.JsonRPCAction.Method == "" {
		return errors.Newf("result %q has an action without a method", r.Title)
	}
	return nil
}

// HasContextMenu reports whether the host should offer a context menu
func (r Result) HasContextMenu() bool {
	return r.ContextData != nil
}

// NonNil returns results, or an empty list when results is nil.
// The host treats a null result list as a plugin failure.
func NonNil(results []Result) []Result {
	if results == nil {
		return []Result{}
	}
	return results
}
