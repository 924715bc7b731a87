package middleware

import (
	"gin-booking/internal/handler/httperr"
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// Language negotiates the response language from Accept-Language.
func Language(cfg config.I18nConfig) gin.HandlerFunc {
	fallback := i18n.Parse(cfg.DefaultLanguage)
	return func(c *gin.Context) {
		c.Set(httperr.LanguageKey, i18n.Match(c.GetHeader("Accept-Language"), fallback))
		c.Next()
	}
}
