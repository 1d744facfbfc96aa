package webserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

const defaultLanguage = "en"

func chooseBestLanguage(c *fiber.Ctx, supportedLanguages []string) string {
	tags := []language.Tag{language.MustParse(defaultLanguage)}
	for _, lang := range supportedLanguages {
		if lang == defaultLanguage {
			continue
		}
		tags = append(tags, language.MustParse(lang))
	}
	matcher := language.NewMatcher(tags)

	t, _, _ := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	_, index, _ := matcher.Match(t...)
	base, _ := tags[index].Base()
	return base.String()
}
