package i18n

import (
	"strings"

	"github.com/samber/lo"
)

// Language is a translation the launcher can be switched to
type Language struct {
	Code    string
	Display string
}

// English is the default language and the fallback for unknown codes
var English = Language{Code: "en", Display: "English"}

var availableLanguages = []Language{
	English,
	{Code: "zh-cn", Display: "中文"},
	{Code: "zh-tw", Display: "中文（繁体）"},
	{Code: "uk-UA", Display: "Українська"},
	{Code: "ru", Display: "Русский"},
	{Code: "fr", Display: "Français"},
	{Code: "ja", Display: "日本語"},
	{Code: "nl", Display: "Dutch"},
	{Code: "pl", Display: "Polski"},
	{Code: "da", Display: "Dansk"},
	{Code: "de", Display: "Deutsch"},
	{Code: "ko", Display: "한국어"},
	{Code: "sr", Display: "Srpski"},
	{Code: "pt-pt", Display: "Português"},
	{Code: "pt-br", Display: "Português (Brasil)"},
	{Code: "es", Display: "Spanish"},
	{Code: "es-419", Display: "Spanish (Latin America)"},
	{Code: "it", Display: "Italiano"},
	{Code: "nb-NO", Display: "Norsk Bokmål"},
	{Code: "sk", Display: "Slovenský"},
	{Code: "tr", Display: "Türkçe"},
	{Code: "cs", Display: "čeština"},
	{Code: "ar", Display: "اللغة العربية"},
	{Code: "vi-vn", Display: "Tiếng Việt"},
}

// AvailableLanguages returns every language the launcher ships
func AvailableLanguages() []Language {
	return append([]Language(nil), availableLanguages...)
}

// LookupLanguage finds a language by code, ignoring case
func LookupLanguage(code string) (Language, bool) {
	return lo.Find(availableLanguages, func(l Language) bool {
		return strings.EqualFold(l.Code, code)
	})
}
