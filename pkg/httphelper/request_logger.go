package httphelper

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/flynn/okd/pkg/ctxhelper"
	"github.com/inconshreveable/log15"
)

// NewRequestLogger logs the start and completion of every request through a
// child of logger tagged with the component name and request ID. It must be
// wrapped by ContextInjector.
func NewRequestLogger(logger log15.Logger, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rw, ok := w.(*ResponseWriter)
		if !ok {
			rw = NewResponseWriter(w, req.Context())
		}

		reqID, _ := ctxhelper.RequestIDFromContext(rw.Context())
		componentName, _ := ctxhelper.ComponentNameFromContext(rw.Context())
		l := logger.New(log15.Ctx{"component": componentName, "req_id": reqID})

		start := time.Now()
		rw.ctx = ctxhelper.NewContextStartTime(ctxhelper.NewContextLogger(rw.Context(), l), start)

		l.Info("request started", "method", req.Method, "path", req.URL.Path, "client_ip", clientIP(req))

		handler.ServeHTTP(rw, req.WithContext(rw.Context()))

		l.Info("request completed", "status", rw.Status(), "duration", time.Since(start))
	})
}

// clientIP returns the last X-Forwarded-For entry, which is the one added by
// the proxy closest to us, falling back to the peer address.
func clientIP(req *http.Request) string {
	var ip string
	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		ip = strings.TrimSpace(ips[len(ips)-1])
	}
	if ip == "" {
		ip, _, _ = net.SplitHostPort(req.RemoteAddr)
	}
	return ip
}
