// Package translate localizes the messages of the intcode tools.
package translate

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV overrides the system locale when set, as a ':' separated list.
const LANG_ENV = "INTCODE_LANG"

var printer *message.Printer

func init() {
	SetLanguage(Languages()...)
}

// Languages returns the preferred languages, most preferred first.
func Languages() (langs []string) {
	if env := os.Getenv(LANG_ENV); len(env) != 0 {
		langs = strings.Split(env, ":")
		return
	}

	langs, err := locale.GetLocales()
	if err != nil {
		log.Printf("intcode: locale: %v", err)
	}

	if len(langs) == 0 {
		langs = []string{"en-US"}
	}

	return
}

// SetLanguage selects the message printer best matching langs.
func SetLanguage(langs ...string) {
	printer = message.NewPrinter(message.MatchLanguage(langs...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
