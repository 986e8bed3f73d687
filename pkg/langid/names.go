package langid

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Unknown is reported when no stage of the cascade can name the language
const Unknown = "Unknown"

var titleCase = cases.Title(language.English)

// Name returns the English display name of tag ("Malayalam"), or Unknown
func Name(tag language.Tag) string {
	if tag == language.Und {
		return Unknown
	}
	base, _ := tag.Base()
	name := display.English.Languages().Name(base)
	if name == "" {
		return Unknown
	}
	return name
}

// NameForCode turns a language code such as "ml", "en-IN" or "mal" into its display name.
// Codes x/text cannot parse are title-cased and returned so nothing is silently dropped.
func NameForCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return Unknown
	}
	tag, err := language.Parse(code)
	if err != nil {
		return titleCase.String(code)
	}
	return Name(tag)
}
