// Package server implements the okd HTTP handler: a liveness endpoint that
// answers GET / with the fixed body "OK".
package server

import (
	"io"
	"net/http"

	"github.com/flynn/okd/pkg/httphelper"
	"github.com/inconshreveable/log15"
	"github.com/julienschmidt/httprouter"
)

// Body is the response body for GET /.
const Body = "OK"

// Handler represents the HTTP handler for okd.
type Handler struct {
	router *httprouter.Router

	Logger log15.Logger
}

// NewHandler returns a new instance of Handler. Paths other than / get the
// router's default not found response.
func NewHandler() *Handler {
	h := &Handler{
		router: httprouter.New(),
		Logger: log15.New("component", "http"),
	}
	h.router.GET("/", h.handleGetRoot)
	return h
}

// ServeHTTP serves an HTTP request and returns a response.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) { h.router.ServeHTTP(w, req) }

func (h *Handler) handleGetRoot(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, Body); err != nil {
		h.Logger.Debug("error writing response", "err", err)
	}
}

// NewServer returns an http.Server serving h behind request ID injection and
// request logging.
func NewServer(h *Handler) *http.Server {
	return &http.Server{
		Handler: httphelper.ContextInjector("okd", httphelper.NewRequestLogger(h.Logger, h)),
	}
}
