package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/flow-launcher/helloworld-go/internal/i18n"
	"github.com/flow-launcher/helloworld-go/internal/logging"
)

// Validator checks configuration values before the plugin starts
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate reports every invalid field of cfg
func (v *Validator) Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration cannot be nil")
	}

	var problems []string
	for _, err := range []error{
		v.ValidateLanguage(cfg.Language),
		v.ValidateLogLevel(cfg.LogLevel),
		v.ValidateIconPath(cfg.IconPath),
	} {
		if err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.Newf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateLanguage checks the language code is one the launcher ships
func (v *Validator) ValidateLanguage(code string) error {
	if strings.TrimSpace(code) == "" {
		return errors.New("language cannot be empty")
	}
	if _, ok := i18n.LookupLanguage(code); !ok {
		return errors.Newf("unsupported language: %s", code)
	}
	return nil
}

// ValidateLogLevel checks the log level parses
func (v *Validator) ValidateLogLevel(level string) error {
	if _, err := logging.ParseLevel(level); err != nil {
		return err
	}
	return nil
}

// ValidateIconPath checks an icon is configured
func (v *Validator) ValidateIconPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("icon path cannot be empty")
	}
	return nil
}

// Sanitize returns a copy of cfg with every invalid field reset to its
// default, plus the problems found. Valid fields are kept as they are.
func (v *Validator) Sanitize(cfg *Config) (*Config, []error) {
	defaults := Default()
	if cfg == nil {
		return defaults, []error{errors.New("configuration cannot be nil")}
	}

	sanitized := *cfg
	var problems []error

	if err := v.ValidateLanguage(sanitized.Language); err != nil {
		problems = append(problems, err)
		sanitized.Language = defaults.Language
	}
	if err := v.ValidateLogLevel(sanitized.LogLevel); err != nil {
		problems = append(problems, err)
		sanitized.LogLevel = defaults.LogLevel
	}
	if err := v.ValidateIconPath(sanitized.IconPath); err != nil {
		problems = append(problems, err)
		sanitized.IconPath = defaults.IconPath
	}

	return &sanitized, problems
}
