//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gin-booking/internal/domain/transaction"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/queries"
	"gin-booking/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	h *harness
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.h = newHarness(s.T())
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) TestSetStatus() {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success: the decision is read back", func() {
		gomock.InOrder(
			s.h.txCmds.EXPECT().SetStatus(gomock.Any(), "tx-1", "accepted").Return(nil),
			s.h.txQ.EXPECT().GetTransaction(gomock.Any(), "tx-1").
				Return(&queries.TransactionView{ID: "tx-1", UserID: "u2", Status: "accepted", CreatedAt: &created}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, "/api/admin/transactions/tx-1/status", map[string]any{"status": "accepted"}, adminToken)

		var res resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("accepted", res.Status)
		s.Require().NotNil(res.CreatedAt)
		s.Equal(created.Unix(), *res.CreatedAt)
	})

	s.Run("error: pending is not a decision", func() {
		s.h.txCmds.EXPECT().SetStatus(gomock.Any(), "tx-1", "pending").
			Return(errs.Mark(transaction.ErrInvalidStatus, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, "/api/admin/transactions/tx-1/status", map[string]any{"status": "pending"}, adminToken)
		s.Equal(http.StatusBadRequest, rec.Code)
		body := decodeError(s.T(), rec)
		s.Equal("Status must be accepted or rejected.", body.Error.Message)
		s.Equal(map[string]any{"status": "Status must be accepted or rejected."}, body.Detail["fields"])
	})

	s.Run("error: missing transaction", func() {
		s.h.txCmds.EXPECT().SetStatus(gomock.Any(), "gone", "rejected").Return(errs.ErrTransactionNotFound)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, "/api/admin/transactions/gone/status", map[string]any{"status": "rejected"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Transaction not found.")
	})
}

func (s *TransactionHandlerTestSuite) TestListAll() {
	s.h.txQ.EXPECT().ListTransactions(gomock.Any()).Return([]*queries.TransactionView{
		{ID: "tx-2", Status: "pending"},
		{ID: "tx-1", Status: "accepted"},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/admin/transactions", nil, adminToken)

	var res []resdto.TransactionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res, 2)
	s.Equal("tx-2", res[0].ID)
	s.Nil(res[0].CreatedAt)
}

func (s *TransactionHandlerTestSuite) TestAppointmentsAreScopedToCaller() {
	s.h.txQ.EXPECT().ListAppointments(gomock.Any(), customerID.UID).
		Return([]*queries.TransactionView{{ID: "tx-1", UserID: customerID.UID}}, nil)

	rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/appointments", nil, customerToken)

	var res []resdto.TransactionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Len(res, 1)
}

func (s *TransactionHandlerTestSuite) TestReadFailure() {
	s.h.customerQ.EXPECT().ListCustomers(gomock.Any()).Return(nil, errs.New("deadline exceeded"))

	rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/admin/customers", nil, adminToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Could not load customers.")
}
