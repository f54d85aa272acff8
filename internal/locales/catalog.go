package locales

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// DefaultLanguage is the fallback for every lookup
const DefaultLanguage = "en"

// LanguageCodes lists supported languages in display order
var LanguageCodes = []string{"en", "ta"}

// LanguageNames maps language code to its native display name
var LanguageNames = map[string]string{
	"en": "English",
	"ta": "தமிழ் (Tamil)",
}

// IsSupported reports whether a language code is in the supported set
func IsSupported(lang string) bool {
	_, ok := LanguageNames[lang]
	return ok
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Catalog resolves (language, key) to interpolated menu text
type Catalog struct {
	tables map[string]map[string]string
}

// NewCatalog builds a catalog over the built-in menu text tables
func NewCatalog() *Catalog {
	return &Catalog{tables: menuTexts}
}

// GetText looks up a template and interpolates named args. Lookup falls
// back from the requested language to English, then to a visible
// "<key_MISSING>" marker. A placeholder referenced by the template but
// absent from args produces a visible error message instead of panicking;
// the dialogue must always complete with some text.
func (c *Catalog) GetText(lang, key string, args map[string]string) string {
	table, ok := c.tables[lang]
	if !ok {
		table = c.tables[DefaultLanguage]
	}
	template, ok := table[key]
	if !ok {
		template, ok = c.tables[DefaultLanguage][key]
	}
	if !ok {
		log.Printf("⚠️  Missing text key '%s' for language '%s'", key, lang)
		return fmt.Sprintf("<%s_MISSING>", key)
	}
	if len(args) == 0 {
		return template
	}
	missing := ""
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := args[name]; ok {
			return v
		}
		if missing == "" {
			missing = name
		}
		return m
	})
	if missing != "" {
		log.Printf("⚠️  Formatting failed for key '%s': missing placeholder '%s'", key, missing)
		return fmt.Sprintf("Error: Data for '%s' is missing.", missing)
	}
	return rendered
}

// RenderWithDefaults interpolates a template, substituting "N/A" for any
// placeholder absent from args. Used for free-form local info records
// where missing attributes are expected rather than errors.
func RenderWithDefaults(template string, args map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := args[name]; ok {
			return v
		}
		return "N/A"
	})
}

// MenuText builds a composite menu block: the ordered key list for the
// menu type, each resolved and joined with newlines.
func (c *Catalog) MenuText(menuType, lang string) string {
	keys, ok := menuKeys[menuType]
	if !ok {
		return ""
	}
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, c.GetText(lang, key, nil))
	}
	return strings.Join(lines, "\n")
}
