package httphelper

import (
	"context"
	"net/http"
)

func NewResponseWriter(w http.ResponseWriter, ctx context.Context) *ResponseWriter {
	return &ResponseWriter{w: w, ctx: ctx}
}

// ResponseWriter records the status code written by the wrapped handler.
type ResponseWriter struct {
	ctx    context.Context
	w      http.ResponseWriter
	status int
}

func (r *ResponseWriter) Context() context.Context {
	return r.ctx
}

// Status returns the status sent to the client, or 0 if nothing has been
// written yet.
func (r *ResponseWriter) Status() int {
	return r.status
}

func (r *ResponseWriter) WriteHeader(s int) {
	if r.status != 0 {
		return
	}
	r.w.WriteHeader(s)
	r.status = s
}

func (r *ResponseWriter) Header() http.Header {
	return r.w.Header()
}

// Write sends an implicit 200 if WriteHeader has not been called, as
// net/http does.
func (r *ResponseWriter) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.w.Write(b)
}

func (r *ResponseWriter) Written() bool {
	return r.status != 0
}

func (r *ResponseWriter) Flush() {
	if flusher, ok := r.w.(http.Flusher); ok {
		flusher.Flush()
	}
}
