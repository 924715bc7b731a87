package api

import (
	"net/http"

	"gin-booking/internal/domain/transaction"
	reqdto "gin-booking/internal/handler/dto/request"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Place order
// @Description Book a service. Signed-out callers get 401 with detail.prompt=login_required.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Service to book"
// @Success 201 {object} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.PlaceOrder(c.Request.Context(), middleware.GetIdentity(c), req.ServiceID)
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgOrderFailed)
		return
	}
	c.JSON(http.StatusCreated, resdto.OrderResponse{TransactionID: result.TransactionID, Status: transaction.StatusPending.String()})
}
