// Package i18n holds every player-facing string of the game, registered in
// the golang.org/x/text/message catalog.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrUnsupportedLanguage = errors.New("unsupported_language")

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag maps a configured language such as "pt", "pt-BR" or "en_US" to
// one of the supported tags. An empty lang yields Default. Anything else that
// matches no supported tag also yields Default, along with
// ErrUnsupportedLanguage.
func ResolveTag(lang string) (language.Tag, error) {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return Default(), nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Default(), fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default(), fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return supportedTags[idx], nil
}
