package api

import (
	"net/http"

	reqdto "gin-booking/internal/handler/dto/request"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	cmds    commands.ServiceCommands
	q       queries.ServiceQueries
	streams *Streamer
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries, streams *Streamer) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q, streams: streams}
}

// @Summary List services
// @Description Service catalog ordered by name
// @Tags services
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/services [get]
// @Router /api/admin/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	list, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgServiceLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(list))
}

// @Summary Stream services
// @Description Server-Sent Events; each snapshot event carries the full catalog
// @Tags services
// @Security BearerAuth
// @Produce text/event-stream
// @Router /api/services/stream [get]
// @Router /api/admin/services/stream [get]
func (h *ServiceHandler) Stream(screen access.Screen) gin.HandlerFunc {
	return func(c *gin.Context) {
		streamLive(c, h.streams, screen, h.q.WatchServices(), resdto.FromServiceViews, i18n.MsgServiceLoadFailed)
	}
}

// @Summary Create service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.CreateService(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgServiceSaveFailed)
		return
	}
	view, err := h.q.GetService(c.Request.Context(), result.ServiceID)
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgServiceLoadFailed)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service
// @Description Writes only the fields present in the body
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Changed fields"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateService(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgServiceSaveFailed)
		return
	}
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgServiceLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Delete service
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Router /api/admin/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgServiceDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
