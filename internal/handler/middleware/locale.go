package middleware

import (
	"drivebook/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const ctxLanguageKey = "language"

// Locale resolves the active language from the "lang" query param or the
// Accept-Language header and stores it on the request context. Handlers
// pass it explicitly into localization calls.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DetermineLocale(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(ctxLanguageKey, lang)
		c.Next()
	}
}

func GetLanguage(c *gin.Context) i18n.Language {
	if v, exists := c.Get(ctxLanguageKey); exists {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.LangEN
}
