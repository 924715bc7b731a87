package api

import (
	"log/slog"
	"net/http"

	"gin-booking/internal/handler/httperr"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/livequery"
	"gin-booking/internal/usecase/access"

	"github.com/gin-gonic/gin"
)

const (
	eventSnapshot = "snapshot"
	eventError    = "error"
)

// Streamer serves live queries as Server-Sent Events. One connection is one
// mounted screen holding one subscription.
type Streamer struct {
	tracker *livequery.Tracker
	logger  *slog.Logger
}

func NewStreamer(tracker *livequery.Tracker, logger *slog.Logger) *Streamer {
	return &Streamer{tracker: tracker, logger: logger}
}

// streamOwner identifies the mounted screen; a client reopening the same
// screen replaces its previous stream.
func streamOwner(c *gin.Context, screen access.Screen) string {
	client := c.GetHeader(middleware.ClientIDHeader)
	if client == "" {
		client = middleware.GetRequestID(c)
	}
	uid := ""
	if id := middleware.GetIdentity(c); id != nil {
		uid = id.UID
	}
	return uid + "/" + string(screen) + "/" + client
}

// streamLive pushes every snapshot of live until the client leaves or the
// subscription fails. A failure is sent once as an error event.
func streamLive[T, R any](c *gin.Context, st *Streamer, screen access.Screen, live *livequery.Live[T], render func([]T) R, failKey string) {
	ctx := c.Request.Context()

	sub, err := live.Open(ctx)
	if err != nil {
		httperr.AbortLocalized(c, http.StatusInternalServerError, err, failKey, nil)
		return
	}
	key := livequery.Key{Owner: streamOwner(c, screen), Query: live.Query().Key()}
	st.tracker.Mount(key, sub)
	defer st.tracker.Unmount(key, sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for items, err := range sub.All() {
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			st.logger.Error("live query failed", "query", key.Query, "owner", key.Owner, "error", err.Error())
			c.SSEvent(eventError, gin.H{"message": httperr.Localize(c, failKey)})
			c.Writer.Flush()
			return
		}
		c.SSEvent(eventSnapshot, render(items))
		c.Writer.Flush()
	}
}
