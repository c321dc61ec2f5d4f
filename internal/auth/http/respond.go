package http

import (
	"log/slog"
	"net/http"

	"github.com/permitd/permitd/pkg/httpx"
	"github.com/permitd/permitd/pkg/slogx"
)

// MsgInternal is the catch-all failure message for the envelope surface.
const MsgInternal = "Sorry! Something went wrong.."

// envelope is the response shape of the account and product surfaces.
// status_code is 1 for success and 0 for any failure, with the HTTP
// status stuck at 200 so clients branch on the envelope, not transport.
type envelope struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Data          any    `json:"data,omitempty"`
}

func writeResult(w http.ResponseWriter, msg string, data any) {
	httpx.WriteJSON(w, http.StatusOK, envelope{StatusCode: 1, StatusMessage: msg, Data: data})
}

func writeFailure(w http.ResponseWriter, msg string) {
	httpx.WriteJSON(w, http.StatusOK, envelope{StatusCode: 0, StatusMessage: msg})
}

func writeInvalid(w http.ResponseWriter, errs []string) {
	httpx.WriteJSON(w, http.StatusBadRequest, struct {
		StatusCode    int      `json:"status_code"`
		StatusMessage string   `json:"status_message"`
		Errors        []string `json:"errors,omitempty"`
	}{0, "Invalid input data", errs})
}

// messageResponse is the response shape of the roles management surface,
// which uses conventional HTTP statuses instead of the envelope.
type messageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	httpx.WriteJSON(w, status, messageResponse{Message: msg})
}

// writeDenial emits the engine's plain-text denial body.
func writeDenial(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// RecoverEnvelope converts handler panics into a status_code 0 envelope.
// Only the account and product surfaces use it; the engine and the roles
// management surface report errors through their own shapes.
func RecoverEnvelope() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slogx.FromContext(r.Context()).Error("handler panic",
						slog.Any("panic", rec),
						slog.String("path", r.URL.Path),
					)
					writeFailure(w, MsgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
