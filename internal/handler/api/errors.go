package api

import (
	"errors"
	"net/http"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/auth"
	"gin-booking/internal/domain/customer"
	"gin-booking/internal/domain/service"
	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/handler/httperr"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type fieldMessage struct {
	field string
	key   string
}

// validationMessages maps domain validation errors to the form field they
// belong to and the message shown for it.
var validationMessages = []struct {
	err error
	msg fieldMessage
}{
	{service.ErrNameRequired, fieldMessage{"name", i18n.MsgServiceNameRequired}},
	{service.ErrDescriptionRequired, fieldMessage{"description", i18n.MsgServiceDescRequired}},
	{service.ErrInvalidPrice, fieldMessage{"price", i18n.MsgServicePriceInvalid}},
	{service.ErrNegativePrice, fieldMessage{"price", i18n.MsgServicePriceNegative}},
	{service.ErrNoChanges, fieldMessage{"", i18n.MsgNoChanges}},
	{transaction.ErrInvalidStatus, fieldMessage{"status", i18n.MsgStatusInvalid}},
	{customer.ErrNameRequired, fieldMessage{"name", i18n.MsgNameRequired}},
	{admin.ErrDisplayNameRequired, fieldMessage{"display_name", i18n.MsgNameRequired}},
	{auth.ErrFieldsRequired, fieldMessage{"", i18n.MsgFieldsRequired}},
	{auth.ErrPasswordMismatch, fieldMessage{"confirm_password", i18n.MsgPasswordMismatch}},
	{auth.ErrInvalidEmail, fieldMessage{"email", i18n.MsgInvalidEmail}},
	{auth.ErrEmailRequired, fieldMessage{"email", i18n.MsgEmailRequired}},
}

// abortWithUsecaseError maps a usecase failure to a response. fallbackKey
// is the localized message for unexpected failures.
func abortWithUsecaseError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, errs.ErrLoginRequired):
		httperr.AbortLocalized(c, http.StatusUnauthorized, err, i18n.MsgLoginRequired,
			gin.H{"prompt": middleware.PromptLoginRequired})
	case errs.Is(err, errs.ErrDomainValidation):
		abortValidation(c, err)
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortLocalized(c, http.StatusNotFound, err, i18n.MsgServiceNotFound, nil)
	case errors.Is(err, errs.ErrTransactionNotFound):
		httperr.AbortLocalized(c, http.StatusNotFound, err, i18n.MsgTransactionNotFound, nil)
	case errors.Is(err, errs.ErrProfileNotFound):
		httperr.AbortLocalized(c, http.StatusNotFound, err, i18n.MsgProfileLoadFailed, nil)
	case errors.Is(err, shared.ErrInvalidSession):
		httperr.AbortLocalized(c, http.StatusUnauthorized, err, i18n.MsgUnauthorized,
			gin.H{"prompt": middleware.PromptLoginRequired})
	default:
		if ae, ok := shared.AsAuthError(err); ok {
			// provider messages are shown verbatim
			httperr.AbortWithError(c, authErrorStatus(ae), err, ae.Message, gin.H{"code": ae.Code})
			return
		}
		httperr.AbortLocalized(c, http.StatusInternalServerError, err, fallbackKey, nil)
	}
}

func authErrorStatus(ae *shared.AuthError) int {
	switch ae.Code {
	case shared.AuthCodeInvalidCredentials:
		return http.StatusUnauthorized
	case shared.AuthCodeEmailExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func abortValidation(c *gin.Context, err error) {
	var (
		message string
		fields  = make(map[string]string)
	)
	for _, cause := range service.FieldErrors(err) {
		for _, vm := range validationMessages {
			if !errors.Is(cause, vm.err) {
				continue
			}
			text := httperr.Localize(c, vm.msg.key)
			if message == "" {
				message = text
			}
			if vm.msg.field != "" {
				if _, seen := fields[vm.msg.field]; !seen {
					fields[vm.msg.field] = text
				}
			}
			break
		}
	}
	if message == "" {
		message = httperr.Localize(c, i18n.MsgInvalidRequest)
	}

	var detail any
	if len(fields) > 0 {
		detail = gin.H{"fields": fields}
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, message, detail)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortLocalized(c, http.StatusBadRequest, err, i18n.MsgInvalidRequest, nil)
}
