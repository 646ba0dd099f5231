package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
)

// sseStream switches the response into server-sent-events mode and returns a
// writer that emits one JSON event per call. The writer serializes concurrent
// emitters, so snapshot callbacks may fire from any goroutine.
func sseStream(c echo.Context) func(payload any) {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	var mu sync.Mutex

	return func(payload any) {
		mu.Lock()
		defer mu.Unlock()

		data, err := json.Marshal(payload)
		if err != nil {
			return
		}

		fmt.Fprintf(resp, "data: %s\n\n", data)
		resp.Flush()
	}
}
