package handler

import (
	"fmt"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/middleware"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/sse"

	"github.com/labstack/echo/v4"
)

// keep-aliveコメントの送信間隔
const sseHeartbeatInterval = 30 * time.Second

// /api/events: フラッシュセール更新などをSSEで配信する。
type EventsHandler struct {
	hub *sse.Hub
}

func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

func (h *EventsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/events", h.stream, middleware.SSEHeaders())
}

func (h *EventsHandler) stream(c echo.Context) error {
	events, cancel := h.hub.Subscribe()
	defer cancel()

	w := c.Response()
	ticker := time.NewTicker(sseHeartbeatInterval)
	defer ticker.Stop()

	done := c.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case ev := <-events:
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data); err != nil {
				return nil
			}
			w.Flush()
		case <-ticker.C:
			//切断検知のためのコメント行
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
