package game

import "github.com/leonelquinteros/gotext"

// tr looks format up in the active catalogue and formats it with args.
// Without a loaded catalogue the English source text is used.
func tr(format string, args ...any) string {
	return gotext.Get(format, args...)
}

// LoadCatalogue points message lookup at the gettext catalogues under dir
// for lang. Missing catalogues leave the English text in place.
func LoadCatalogue(dir, lang string) {
	gotext.Configure(dir, lang, "aether")
}
