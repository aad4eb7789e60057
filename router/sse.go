package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miles/straymaps/event"
)

// NotifyEvents GET /v1/events
//
// レポートの保存・削除イベントをServer-Sent Eventsで配信する。
func (h *Handlers) NotifyEvents(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	sub := h.Hub.Subscribe(16,
		string(event.StrayAnimalReportSaved),
		string(event.StrayAnimalReportDeleted),
		string(event.LostPetReportSaved),
		string(event.LostPetReportDeleted),
	)
	defer h.Hub.Unsubscribe(sub)

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case msg, ok := <-sub.Receiver:
			if !ok {
				return nil
			}
			data, err := json.Marshal(msg.Fields)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", msg.Name, data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
