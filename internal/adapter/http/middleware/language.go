package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/translator"
)

// LanguageMiddleware stores the request language from the Accept-Language
// header. Only the primary subtag is kept, so "fr-CA" resolves to "fr".
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if i := strings.IndexAny(lang, ",;-"); i >= 0 {
			lang = lang[:i]
		}
		lang = strings.TrimSpace(lang)
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
