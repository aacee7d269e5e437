package handlers

import (
	"net/http"
	"time"

	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
)

const (
	connectivityStatus  = "success"
	connectivityMessage = "CORS test successful! Backend is reachable."

	// timestampLayout renders UTC instants with millisecond precision, e.g. 2024-05-01T09:30:00.000Z.
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// ConnectivityResponse confirms that the API is reachable from the caller's origin.
type ConnectivityResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ConnectivityHandler answers the test endpoint used by browser clients to verify reachability and CORS.
type ConnectivityHandler struct {
	now func() time.Time
}

// ServeHTTP responds with a success status and the current time.
func (h *ConnectivityHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSONResponse(w, http.StatusOK, ConnectivityResponse{
		Status:    connectivityStatus,
		Message:   connectivityMessage,
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}

// NewConnectivityHandler creates the test endpoint handler. A nil clock defaults to time.Now.
func NewConnectivityHandler(now func() time.Time) http.Handler {
	if now == nil {
		now = time.Now
	}

	return &ConnectivityHandler{now: now}
}
