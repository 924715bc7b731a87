//go:build e2e

package booking_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"time"

	"gin-booking/internal/handler/dto/response"
	"gin-booking/internal/handler/middleware"
	"gin-booking/tests/common/builder"
	"gin-booking/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

type sseEvent struct {
	name string
	data string
}

func (s *bookingSuite) readEvent(r *bufio.Reader) sseEvent {
	var ev sseEvent
	for {
		line, err := r.ReadString('\n')
		s.Require().NoError(err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if ev.name != "" {
				return ev
			}
		case strings.HasPrefix(line, "event:"):
			ev.name = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			ev.data = strings.TrimPrefix(line, "data:")
		}
	}
}

func (s *bookingSuite) readTransactions(r *bufio.Reader) []response.TransactionResponse {
	ev := s.readEvent(r)
	s.Require().Equal("snapshot", ev.name, ev.data)
	var list []response.TransactionResponse
	s.Require().NoError(json.Unmarshal([]byte(ev.data), &list))

	seen := make(map[string]bool, len(list))
	for _, tx := range list {
		s.Require().False(seen[tx.ID], "transaction %s listed twice", tx.ID)
		seen[tx.ID] = true
	}
	return list
}

func (s *bookingSuite) TestTransactionStreamFollowsStatusChanges() {
	t := s.T()
	adminToken := s.signUpAdmin()
	customerToken := s.signUpCustomer()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminServicesURL, builder.NewServiceBuilder().BuildDTO(), adminToken)
	var svc response.ServiceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &svc)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]string{"service_id": svc.ID}, customerToken)
	var order response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &order)

	srv := nethttptest.NewServer(s.Router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+adminTransactionURL+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	req.Header.Set(middleware.ClientIDHeader, "admin-tab")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	httptest.AssertHeaders(t, resp.Header, map[string]string{
		"Content-Type":  "text/event-stream",
		"Cache-Control": "no-cache",
	})

	body := bufio.NewReader(resp.Body)
	first := s.readTransactions(body)
	require.Len(t, first, 1)
	require.Equal(t, order.TransactionID, first[0].ID)
	require.Equal(t, "pending", first[0].Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminTransactionURL+"/"+order.TransactionID+"/status",
		map[string]string{"status": "accepted"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a notification may land between the first query and the update
	var next []response.TransactionResponse
	for range 5 {
		next = s.readTransactions(body)
		require.Len(t, next, 1)
		if next[0].Status == "accepted" {
			break
		}
	}
	require.Equal(t, order.TransactionID, next[0].ID)
	require.Equal(t, "accepted", next[0].Status)
}
