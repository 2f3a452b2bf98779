package httphelper

import (
	"context"
	"net/http"

	"github.com/flynn/okd/pkg/ctxhelper"
	"github.com/flynn/okd/pkg/random"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// ContextInjector tags every request with an ID and the component name and
// hands the wrapped handler a *ResponseWriter carrying them. The ID is taken
// from the X-Request-ID request header if present and echoed in the
// response.
func ContextInjector(componentName string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqID := req.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = random.UUID()
		}
		ctx := ctxhelper.NewContextRequestID(req.Context(), reqID)
		ctx = ctxhelper.NewContextComponentName(ctx, componentName)
		w.Header().Set(RequestIDHeader, reqID)
		rw := NewResponseWriter(w, ctx)
		handler.ServeHTTP(rw, req.WithContext(ctx))
	})
}

// ContextFromResponseWriter returns the request context stored by
// ContextInjector, or context.Background if w was not wrapped.
func ContextFromResponseWriter(w http.ResponseWriter) context.Context {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw.Context()
	}
	return context.Background()
}
