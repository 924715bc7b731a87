package api

import (
	"net/http"

	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	q       queries.CustomerQueries
	streams *Streamer
}

func NewCustomerHandler(q queries.CustomerQueries, streams *Streamer) *CustomerHandler {
	return &CustomerHandler{q: q, streams: streams}
}

// @Summary List customers
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Router /api/admin/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.q.ListCustomers(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgCustomersLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(list))
}

// @Summary Stream customers
// @Tags admin
// @Security BearerAuth
// @Produce text/event-stream
// @Router /api/admin/customers/stream [get]
func (h *CustomerHandler) Stream(c *gin.Context) {
	streamLive(c, h.streams, access.ScreenCustomers, h.q.WatchCustomers(), resdto.FromCustomerViews, i18n.MsgCustomersLoadFailed)
}
