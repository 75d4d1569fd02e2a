package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sabique2003/Tasklite/pkg/translator"
)

const (
	langContextKey = "lang"
	// LangQueryParam lets a board link force a language over the header.
	LangQueryParam = "lang"
)

// LanguageMiddleware stores the caller's language for translated messages
// and board labels. go-i18n parses the raw Accept-Language value itself.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query(LangQueryParam)
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set(langContextKey, lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, ok := c.Get(langContextKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
