//go:build unit

package api_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"gin-booking/internal/handler/api"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/livequery"
	"gin-booking/internal/pkg/clock"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/queries"
	commonhttptest "gin-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sseEvent struct {
	name string
	data string
}

// readEvent returns the next complete event from an SSE body.
func readEvent(t *testing.T, r *bufio.Reader) sseEvent {
	t.Helper()
	var ev sseEvent
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
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

func TestStreamServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store := memstore.New(clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
	services := repository.NewServiceRepository(store, discard)
	_, err := store.Add(ctx, "services", map[string]any{"name": "Oil Change", "description": "Basic", "price": 29.99})
	require.NoError(t, err)

	tracker := livequery.NewTracker(discard)
	h := api.NewServiceHandler(nil, queries.NewServiceQueries(services), api.NewStreamer(tracker, discard))

	router := gin.New()
	router.GET("/stream", func(c *gin.Context) {
		middleware.SetIdentity(c, customerID)
		c.Next()
	}, h.Stream(access.ScreenCustomerServices))

	srv := nethttptest.NewServer(router)
	defer srv.Close()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, srv.URL+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.ClientIDHeader, "tab-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	commonhttptest.AssertHeaders(t, resp.Header, map[string]string{
		"Content-Type":      "text/event-stream",
		"Cache-Control":     "no-cache",
		"X-Accel-Buffering": "no",
	})

	body := bufio.NewReader(resp.Body)

	first := readEvent(t, body)
	assert.Equal(t, "snapshot", first.name)
	var list []resdto.ServiceResponse
	require.NoError(t, json.Unmarshal([]byte(first.data), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Oil Change", list[0].Name)
	assert.Equal(t, 1, tracker.Active())

	_, err = store.Add(ctx, "services", map[string]any{"name": "Brake Check", "description": "Pads", "price": 15.0})
	require.NoError(t, err)

	second := readEvent(t, body)
	require.NoError(t, json.Unmarshal([]byte(second.data), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Brake Check", list[0].Name)

	cancel()
	assert.Eventually(t, func() bool {
		return tracker.Active() == 0 && store.ListenerCount("services") == 0
	}, 2*time.Second, 10*time.Millisecond)
}
