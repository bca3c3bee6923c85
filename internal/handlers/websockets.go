package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	minInterval      = 10 * time.Millisecond
	maxInterval      = time.Minute
	maxIntervalMilli = 60_000
)

const wsTypeDays = "days"

var errClientGone = errors.New("client disconnected")

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The feed is read-only public data.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsAvailability godoc
// @Summary Live feed of upcoming day occupancy
// @Tags availability
// @Param interval query string false "push interval, e.g. 2s (default 5s, max 1m)"
// @Router /ws/availability [get]
func (h *Handler) wsAvailability(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	gone := watchClient(conn)
	err = h.streamDays(c.Request.Context(), conn, interval, gone)
	if h.log != nil {
		h.log.Debugw("ws_availability_closed", "reason", err)
	}
}

// watchClient keeps reading so pong and close frames are processed. The returned
// channel closes when the client goes away or stops answering pings.
func watchClient(conn *websocket.Conn) <-chan struct{} {
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return gone
}

// streamDays sends the day list now and then every interval, pinging in between.
// It returns why the stream ended.
func (h *Handler) streamDays(ctx context.Context, conn *websocket.Conn, interval time.Duration, gone <-chan struct{}) error {
	push := time.NewTicker(interval)
	defer push.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := h.sendDays(ctx, conn); err != nil {
		return err
	}
	for {
		select {
		case <-gone:
			return errClientGone
		case <-ctx.Done():
			return ctx.Err()
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case <-push.C:
			if err := h.sendDays(ctx, conn); err != nil {
				return err
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 within bounds; anything else gets the default.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= int(minInterval/time.Millisecond) && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// sendDays writes the current upcoming-days list. A load failure is reported to the
// client as an error envelope and ends the stream.
func (h *Handler) sendDays(ctx context.Context, conn *websocket.Conn) error {
	days, err := h.services.UpcomingDays(ctx, time.Time{}, 0)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_load_days_failed", "err", err)
		}
		_ = conn.WriteJSON(wsEnvelope{Type: wsTypeDays, Error: errInternal})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: wsTypeDays, Data: days})
}
