package api

import (
	"net/http"

	reqdto "gin-booking/internal/handler/dto/request"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Customer profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CustomerResponse
// @Router /api/profile [get]
func (h *ProfileHandler) GetCustomer(c *gin.Context) {
	view, err := h.q.GetCustomerProfile(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgProfileLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Rename customer
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateNameRequest true "New name"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Router /api/profile [put]
func (h *ProfileHandler) UpdateCustomer(c *gin.Context) {
	who := middleware.GetIdentity(c)
	if who.IsZero() {
		abortWithUsecaseError(c, errs.ErrLoginRequired, i18n.MsgProfileUpdateFailed)
		return
	}
	var req reqdto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateCustomerName(c.Request.Context(), who.UID, req.Name); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgProfileUpdateFailed)
		return
	}
	h.GetCustomer(c)
}

// @Summary Admin profile
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminProfileResponse
// @Router /api/admin/profile [get]
func (h *ProfileHandler) GetAdmin(c *gin.Context) {
	view, err := h.q.GetAdminProfile(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgProfileLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminProfileView(view))
}

// @Summary Rename admin
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateNameRequest true "New display name"
// @Success 200 {object} resdto.AdminProfileResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/profile [put]
func (h *ProfileHandler) UpdateAdmin(c *gin.Context) {
	who := middleware.GetIdentity(c)
	if who.IsZero() {
		abortWithUsecaseError(c, errs.ErrLoginRequired, i18n.MsgProfileUpdateFailed)
		return
	}
	var req reqdto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateAdminDisplayName(c.Request.Context(), who.UID, req.Name); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgProfileUpdateFailed)
		return
	}
	h.GetAdmin(c)
}
