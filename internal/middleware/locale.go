package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-manager/internal/i18n"
)

const ContextLocale = "locale"

// LocaleMiddleware negotiates ?lang=, then Accept-Language, then fallback.
func LocaleMiddleware(fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Negotiate(
			c.Query("lang"),
			c.GetHeader("Accept-Language"),
			fallback,
		)
		c.Set(ContextLocale, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

// Locale returns the negotiated language, English outside the middleware.
func Locale(c *gin.Context) string {
	if v, ok := c.Get(ContextLocale); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return i18n.English
}
