// Package keepalive provides a listener that enables TCP keepalives.
package keepalive

import (
	"net"
	"time"

	"github.com/pkg/errors"
)

// Period is the keep-alive period set on accepted connections.
const Period = 3 * time.Minute

// Listen announces on the local TCP address and returns a listener whose
// accepted connections have keep-alive enabled. The socket is opened without
// SO_REUSEPORT, so binding an address that is already in use fails.
func Listen(network, addr string) (net.Listener, error) {
	ln, err := net.Listen(network, addr)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening port %s", addr)
	}
	return Listener(ln), nil
}

// Listener returns a net.Listener that enables TCP keep-alive timeouts on
// accepted connections, so dead peers are eventually detected.
func Listener(l net.Listener) net.Listener {
	tl, ok := l.(*net.TCPListener)
	if !ok {
		return l
	}
	return keepaliveListener{tl}
}

type keepaliveListener struct {
	*net.TCPListener
}

func (l keepaliveListener) Accept() (net.Conn, error) {
	tc, err := l.AcceptTCP()
	if err != nil {
		return nil, err
	}
	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(Period)
	return tc, nil
}
