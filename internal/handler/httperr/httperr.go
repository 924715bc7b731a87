package httperr

import (
	"gin-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// LanguageKey holds the language.Tag negotiated for the request.
const LanguageKey = "language"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortLocalized is AbortWithError with msgKey rendered in the request language.
func AbortLocalized(c *gin.Context, status int, err error, msgKey string, detail any) {
	AbortWithError(c, status, err, Localize(c, msgKey), detail)
}

func Language(c *gin.Context) language.Tag {
	if v, ok := c.Get(LanguageKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.English
}

func Localize(c *gin.Context, msgKey string) string {
	return i18n.Translate(Language(c), msgKey)
}
