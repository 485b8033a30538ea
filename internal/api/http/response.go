package httpapi

import (
	"net/http"

	"log/slog"

	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
	"github.com/go-chi/render"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrRender maps err onto the status its class calls for.
func ErrRender(err error) render.Renderer {
	code := gerr.HTTPStatus(err)
	resp := &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
	}
	switch code {
	case http.StatusBadRequest:
		resp.StatusText = "Invalid request."
		resp.ErrorText = err.Error()
	case http.StatusBadGateway:
		resp.StatusText = "Data source unavailable."
	}
	return resp
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrRender(err).(*ErrResponse)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", resp.HTTPStatusCode),
			slog.String("err", err.Error()),
		)
	}
	_ = render.Render(w, r, resp)
}
