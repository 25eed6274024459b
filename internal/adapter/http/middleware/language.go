package middleware

import (
	"taskdesk/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Indonesian,
})

// LanguageMiddleware is a Gin middleware that sets the language based on the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", matchLanguage(c.GetHeader("Accept-Language")))
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

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No || index != 1 {
		return translator.LanguageEn
	}
	return translator.LanguageId
}
