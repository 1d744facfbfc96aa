package i18n

import (
	"io/fs"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printers returns a message printer for every language found in dir
func Printers(dir fs.FS, fallbackLang string) (map[string]*message.Printer, error) {
	cat, langs, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer, len(langs))
	for _, lang := range langs {
		printers[lang] = message.NewPrinter(language.MustParse(lang), message.Catalog(cat))
	}
	return printers, nil
}

// Languages returns the languages printers are available for, sorted alphabetically.
func Languages(printers map[string]*message.Printer) []string {
	langs := maps.Keys(printers)
	slices.Sort(langs)
	return langs
}
