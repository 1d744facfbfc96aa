package infrastructure

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		printer, ok := printers[lang]
		if !ok {
			printer = printers[defaultLanguage]
		}
		return template.HTML(printer.Sprintf(key, values...))
	})

	engine.AddFunc("deref", func(value *string) string {
		if value == nil {
			return ""
		}
		return *value
	})

	if err := engine.Load(); err != nil {
		return nil, err
	}

	return engine, nil
}

const defaultLanguage = "en"
