// Package i18n holds the localized phrases spoken by the live region and the
// per-widget language context.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Phrases is one language's table of announcement fragments
type Phrases struct {
	Highlighted string
	Of          string
	Selected    string
	Placeholder string
}

// DefaultTag is used when a tag is empty, unparseable or unsupported
var DefaultTag = language.English

var tables = map[language.Tag]Phrases{
	language.English: {
		Highlighted: "highlighted, choice",
		Of:          "of",
		Selected:    "selected",
		Placeholder: "Select an option",
	},
	language.French: {
		Highlighted: "surligné, choix",
		Of:          "de",
		Selected:    "sélectionné",
		Placeholder: "Sélectionnez une option",
	},
}

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Lookup returns the phrase table for tag and the tag actually used.
// Region and script are ignored, so "fr-CA" and "fr_FR.UTF-8" both pick French.
func Lookup(tag string) (Phrases, language.Tag) {
	t, err := language.Parse(normalize(tag))
	if err != nil {
		return tables[DefaultTag], DefaultTag
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return tables[DefaultTag], DefaultTag
	}
	chosen := supported[index]
	return tables[chosen], chosen
}

// Supported lists the tags that have a phrase table
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// TagFromEnv reads the POSIX locale variables in precedence order
func TagFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return normalize(v)
		}
	}
	return ""
}

// normalize turns POSIX locale strings like "fr_CA.UTF-8@euro" into BCP 47
func normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ReplaceAll(tag, "_", "-")
}
