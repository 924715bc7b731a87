package api

import (
	"net/http"

	reqdto "gin-booking/internal/handler/dto/request"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the admin review screen and the customer's
// appointments, which are the same records filtered by owner.
type TransactionHandler struct {
	cmds    commands.TransactionCommands
	q       queries.TransactionQueries
	streams *Streamer
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries, streams *Streamer) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q, streams: streams}
}

// @Summary List transactions
// @Description All transactions, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.TransactionResponse
// @Router /api/admin/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	list, err := h.q.ListTransactions(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgTransactionLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionViews(list))
}

// @Summary Stream transactions
// @Description Server-Sent Events; each snapshot event carries every transaction, newest first
// @Tags admin
// @Security BearerAuth
// @Produce text/event-stream
// @Router /api/admin/transactions/stream [get]
func (h *TransactionHandler) Stream(c *gin.Context) {
	streamLive(c, h.streams, access.ScreenTransactions, h.q.WatchTransactions(), resdto.FromTransactionViews, i18n.MsgTransactionLoadFailed)
}

// @Summary Get transaction
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	view, err := h.q.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgTransactionLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionView(view))
}

// @Summary Decide transaction
// @Description Set status to accepted or rejected
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body reqdto.SetStatusRequest true "Decision"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/transactions/{id}/status [patch]
func (h *TransactionHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgStatusUpdateFailed)
		return
	}
	view, err := h.q.GetTransaction(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgTransactionLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionView(view))
}

// @Summary My appointments
// @Description The caller's own transactions, newest first
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.TransactionResponse
// @Router /api/appointments [get]
func (h *TransactionHandler) ListAppointments(c *gin.Context) {
	who := middleware.GetIdentity(c)
	if who.IsZero() {
		abortWithUsecaseError(c, errs.ErrLoginRequired, i18n.MsgAppointmentsFailed)
		return
	}
	list, err := h.q.ListAppointments(c.Request.Context(), who.UID)
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgAppointmentsFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionViews(list))
}

// @Summary Stream my appointments
// @Tags appointments
// @Security BearerAuth
// @Produce text/event-stream
// @Router /api/appointments/stream [get]
func (h *TransactionHandler) StreamAppointments(c *gin.Context) {
	who := middleware.GetIdentity(c)
	if who.IsZero() {
		abortWithUsecaseError(c, errs.ErrLoginRequired, i18n.MsgAppointmentsFailed)
		return
	}
	streamLive(c, h.streams, access.ScreenAppointments, h.q.WatchAppointments(who.UID), resdto.FromTransactionViews, i18n.MsgAppointmentsFailed)
}
