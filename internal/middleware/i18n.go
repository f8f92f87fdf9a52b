// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var supportedLangs = map[string]bool{
	"en":    true,
	"zh_TW": true,
}

// I18nMiddleware resolves the response language from the Accept-Language
// header and stores it in the request context.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang != "" {
			// Only the primary tag is considered
			lang = strings.Split(lang, ",")[0]
			lang = strings.Split(lang, ";")[0]
			lang = strings.TrimSpace(lang)
			lang = strings.ReplaceAll(lang, "-", "_")
		}
		if !supportedLangs[lang] {
			lang = "en"
		}
		c.Set("lang", lang)
		c.Next()
	}
}
