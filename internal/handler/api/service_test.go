//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gin-booking/internal/domain/service"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"
	"gin-booking/tests/common/httptest"
	"gin-booking/tests/common/testutil"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceHandlerTestSuite struct {
	suite.Suite
	h *harness
}

func (s *ServiceHandlerTestSuite) SetupTest() {
	s.h = newHarness(s.T())
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

func (s *ServiceHandlerTestSuite) TestCreate() {
	url := "/api/admin/services"
	body := map[string]any{"name": "Oil Change", "description": "Basic", "price": 29.99}
	oil := &queries.ServiceView{ID: "svc-1", Name: "Oil Change", Description: "Basic", Price: 29.99}

	s.Run("success: numeric price is forwarded as text", func() {
		s.h.serviceCmds.EXPECT().
			CreateService(gomock.Any(), commands.CreateServiceRequest{Name: "Oil Change", Description: "Basic", Price: "29.99"}).
			Return(&commands.CreateServiceResult{ServiceID: "svc-1"}, nil)
		s.h.serviceQ.EXPECT().GetService(gomock.Any(), "svc-1").Return(oil, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, "POST", url, body, adminToken)

		var res resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(resdto.ServiceResponse{ID: "svc-1", Name: "Oil Change", Description: "Basic", Price: 29.99}, res)
	})

	s.Run("success: price given as a string", func() {
		s.h.serviceCmds.EXPECT().
			CreateService(gomock.Any(), commands.CreateServiceRequest{Name: "Oil Change", Description: "Basic", Price: "29.99"}).
			Return(&commands.CreateServiceResult{ServiceID: "svc-1"}, nil)
		s.h.serviceQ.EXPECT().GetService(gomock.Any(), "svc-1").Return(oil, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, "POST", url, testutil.DtoMap(s.T(), body, testutil.Field("price", "29.99")), adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: field messages are localized", func() {
		var merr *multierror.Error
		merr = multierror.Append(merr, service.ErrNameRequired, service.ErrInvalidPrice)
		s.h.serviceCmds.EXPECT().CreateService(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(merr, errs.ErrDomainValidation))

		rec := httptest.PerformRequestWithHeaders(s.T(), s.h.router, "POST", url,
			map[string]any{"name": "", "description": "Basic", "price": "abc"}, adminToken,
			map[string]string{"Accept-Language": "vi-VN,vi;q=0.9"})

		s.Equal(http.StatusBadRequest, rec.Code)
		res := decodeError(s.T(), rec)
		s.Equal("Vui lòng nhập tên dịch vụ.", res.Error.Message)
		s.Equal(map[string]any{
			"name":  "Vui lòng nhập tên dịch vụ.",
			"price": "Giá phải là một số hợp lệ.",
		}, res.Detail["fields"])
	})

	s.Run("error: english by default", func() {
		s.h.serviceCmds.EXPECT().CreateService(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(service.ErrNegativePrice, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.h.router, "POST", url, testutil.DtoMap(s.T(), body, testutil.Field("price", -1)), adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Price cannot be negative.")
	})

	s.Run("error: price of the wrong JSON type", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, "POST", url, testutil.DtoMap(s.T(), body, testutil.Field("price", true)), adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ServiceHandlerTestSuite) TestUpdate() {
	s.Run("success: only present fields form the patch", func() {
		s.h.serviceCmds.EXPECT().UpdateService(gomock.Any(), "svc-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, p service.Patch) error {
				s.Require().NotNil(p.Price)
				s.Equal("35", *p.Price)
				s.Nil(p.Name)
				s.Nil(p.Description)
				return nil
			})
		s.h.serviceQ.EXPECT().GetService(gomock.Any(), "svc-1").
			Return(&queries.ServiceView{ID: "svc-1", Name: "Oil Change", Description: "Basic", Price: 35}, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, "PUT", "/api/admin/services/svc-1", map[string]any{"price": 35}, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for a missing service", func() {
		s.h.serviceCmds.EXPECT().UpdateService(gomock.Any(), "gone", gomock.Any()).Return(errs.ErrServiceNotFound)

		rec := httptest.PerformRequest(s.T(), s.h.router, "PUT", "/api/admin/services/gone", map[string]any{"name": "x"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found.")
	})
}

func (s *ServiceHandlerTestSuite) TestDelete() {
	s.h.serviceCmds.EXPECT().DeleteService(gomock.Any(), "svc-1").Return(nil)

	rec := httptest.PerformRequest(s.T(), s.h.router, "DELETE", "/api/admin/services/svc-1", nil, adminToken)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServiceHandlerTestSuite) TestList() {
	s.h.serviceQ.EXPECT().ListServices(gomock.Any()).Return([]*queries.ServiceView{
		{ID: "a", Name: "Brake Check", Price: 15},
		{ID: "b", Name: "Oil Change", Price: 29.99},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.h.router, "GET", "/api/services", nil, customerToken)

	var res []resdto.ServiceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res, 2)
	s.Equal("Brake Check", res[0].Name)
}
