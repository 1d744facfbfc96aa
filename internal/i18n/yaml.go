package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

type yamlDictionary struct {
	Entries map[string]string
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.Entries[key]; ok {
		// \x02 is ASCII code for hex 02, which is STX (start of text)
		return "\x02" + value, true
	}
	return "", false
}

// NewCatalogFromFolder reads all translation yml files from the root of dir and generates a
// translation catalog from them. Each yml file must be named as the two-letter
// identifier of the language of the translation, e. g. "es" for spanish, "en" for english, etc.
// It also returns the list of languages found.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, []string, error) {
	files, err := doublestar.Glob(dir, "*.{yml,yaml}")
	if err != nil {
		return nil, nil, err
	}
	translations := map[string]catalog.Dictionary{}
	langs := make([]string, 0, len(files))
	for _, file := range files {
		yamlFile, err := fs.ReadFile(dir, file)
		if err != nil {
			return nil, nil, err
		}
		lang := strings.TrimSuffix(file, path.Ext(file))
		if _, err := language.Parse(lang); err != nil {
			return nil, nil, fmt.Errorf("translation file %s is not named after a language: %w", file, err)
		}
		dict, err := ParseYAMLDict(yamlFile)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing %s: %w", file, err)
		}
		translations[lang] = dict
		langs = append(langs, lang)
	}
	if _, ok := translations[fallbackLang]; !ok {
		return nil, nil, fmt.Errorf("no translation file found for fallback language '%s'", fallbackLang)
	}
	fallback := language.MustParse(fallbackLang)
	cat, err := catalog.NewFromMap(translations, catalog.Fallback(fallback))
	if err != nil {
		return nil, nil, err
	}
	return cat, langs, nil
}

func ParseYAMLDict(file []byte) (*yamlDictionary, error) {
	data := map[string]string{}
	err := yaml.Unmarshal(file, &data)
	if err != nil {
		return nil, err
	}
	return &yamlDictionary{Entries: data}, nil
}
