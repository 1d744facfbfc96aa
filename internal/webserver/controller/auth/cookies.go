package auth

import "github.com/gofiber/fiber/v2"

const (
	LocaleCookie    = "sn_locale"
	DarkThemeCookie = "sn_isDarkTheme"
)

// Cookie returns the raw value of the named request cookie, or nil if the request
// does not carry it. If the cookie appears more than once the first value wins.
func Cookie(c *fiber.Ctx, name string) *string {
	var value *string
	c.Request().Header.VisitAllCookie(func(key, val []byte) {
		if value == nil && string(key) == name {
			v := string(val)
			value = &v
		}
	})
	return value
}
