// Package i18n resolves user-facing message IDs through gotext. An en_GB
// catalog is built in, so output reads the same with no locale directory.
package i18n

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

const (
	// Domain is the gettext domain every catalog is loaded under.
	Domain = "default"
	// DefaultLang is the language of the built-in catalog.
	DefaultLang = "en_GB"

	// knownID must be present in every catalog.
	knownID = "DUMP_BEGIN"
)

//go:embed en_GB.po
var builtin []byte

// dynamicGet is a function variable so go vet does not flag message IDs
// as non-constant format strings.
var dynamicGet = gotext.Get

var loadOnce sync.Once

func loadBuiltin() {
	po := gotext.NewPo()
	po.Parse(builtin)
	l := gotext.NewLocale("", DefaultLang)
	l.AddTranslator(Domain, po)
	gotext.SetStorage(l)
}

func ensureLoaded() {
	loadOnce.Do(loadBuiltin)
}

// Configure switches to the lang catalog under dir, laid out the gettext way
// (dir/lang/LC_MESSAGES/default.po). An empty dir keeps the built-in catalog.
// If dir has no catalog for lang the built-in one is restored and an error
// is returned.
func Configure(dir, lang string) error {
	ensureLoaded()
	if dir == "" {
		return nil
	}
	gotext.Configure(dir, lang, Domain)
	if dynamicGet(knownID) == knownID {
		loadBuiltin()
		return fmt.Errorf("no %s catalog in %s", lang, dir)
	}
	return nil
}

// T returns the translation of id, or id itself when no catalog has it.
func T(id string) string {
	ensureLoaded()
	return dynamicGet(id)
}

// Tf formats the translation of id with args.
func Tf(id string, args ...any) string {
	return fmt.Sprintf(T(id), args...)
}
