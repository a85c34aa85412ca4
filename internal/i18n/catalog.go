package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// Folder is the directory, relative to a plugin root, holding language files
	Folder = "Languages"

	extension   = ".yaml"
	defaultFile = "en" + extension
)

// Translation keys used by the plugin
const (
	KeyTitle            = "helloworld_title"
	KeyQuerySubTitle    = "helloworld_query_subtitle"
	KeyContextMenuTitle = "helloworld_context_menu_title"
	KeyContextSubTitle  = "helloworld_context_menu_subtitle"
	KeyPluginName       = "helloworld_plugin_name"
	KeyPluginDesc       = "helloworld_plugin_description"
)

var builtinEnglish = map[string]string{
	KeyTitle:            "Hello World",
	KeyQuerySubTitle:    "Query: {0}",
	KeyContextMenuTitle: "Context menu entry",
	KeyContextSubTitle:  "Data: {0}",
	KeyPluginName:       "Hello World Go",
	KeyPluginDesc:       "Hello World plugin for Flow Launcher written in Go",
}

// Catalog resolves translation keys for the current language.
// Built-in English strings are always present; language files found in the
// registered directories override them.
type Catalog struct {
	logger       *zap.Logger
	directories  []string
	language     Language
	translations map[string]string
}

// NewCatalog creates a catalog reading language files from <root>/Languages
// for every root, loaded with English.
func NewCatalog(logger *zap.Logger, roots ...string) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	dirs := lo.Uniq(lo.FilterMap(roots, func(root string, _ int) (string, bool) {
		if root == "" {
			return "", false
		}
		return filepath.Join(root, Folder), true
	}))

	c := &Catalog{
		logger:      logger,
		directories: dirs,
	}
	c.load(English)
	return c
}

// Directories returns the language directories in load order
func (c *Catalog) Directories() []string {
	return append([]string(nil), c.directories...)
}

// Language returns the active language
func (c *Catalog) Language() Language {
	return c.language
}

// ChangeLanguage switches to the language with the given code.
// Unknown codes fall back to English.
func (c *Catalog) ChangeLanguage(code string) Language {
	language, ok := LookupLanguage(strings.TrimSpace(code))
	if !ok {
		c.logger.Error("language code can't be found", zap.String("code", code))
		language = English
	}
	c.load(language)
	return language
}

// Translate returns the text for key in the active language
func (c *Catalog) Translate(key string) string {
	if text, ok := c.translations[key]; ok {
		return text
	}
	c.logger.Error("no translation for key", zap.String("key", key))
	return fmt.Sprintf("No Translation for key %s", key)
}

// Translatef translates key and substitutes {0}, {1}, ... with args
func (c *Catalog) Translatef(key string, args ...any) string {
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, fmt.Sprintf("{%d}", i), fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(c.Translate(key))
}

func (c *Catalog) load(language Language) {
	translations := make(map[string]string, len(builtinEnglish))
	for k, v := range builtinEnglish {
		translations[k] = v
	}

	codes := []string{English.Code}
	if language.Code != English.Code {
		codes = append(codes, language.Code)
	}

	for _, code := range codes {
		for _, dir := range c.directories {
			file := LanguageFile(c.logger, dir, code)
			if file == "" {
				continue
			}
			entries, err := readLanguageFile(file)
			if err != nil {
				c.logger.Error("failed to load language file", zap.String("file", file), zap.Error(err))
				continue
			}
			for k, v := range entries {
				translations[k] = v
			}
		}
	}

	c.language = language
	c.translations = translations
	c.logger.Debug("language loaded",
		zap.String("code", language.Code),
		zap.Int("keys", len(translations)))
}

// LanguageFile returns the file for code inside folder, falling back to the
// English file. It returns "" when folder or both files are missing.
func LanguageFile(logger *zap.Logger, folder, code string) string {
	if info, err := os.Stat(folder); err != nil || !info.IsDir() {
		return ""
	}

	path := filepath.Join(folder, code+extension)
	if fileExists(path) {
		return path
	}
	logger.Error("language path can't be found", zap.String("path", path))

	english := filepath.Join(folder, defaultFile)
	if fileExists(english) {
		return english
	}
	logger.Error("default English language path can't be found", zap.String("path", english))
	return ""
}

func readLanguageFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return entries, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
