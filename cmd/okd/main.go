package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/flynn/okd/pkg/keepalive"
	"github.com/flynn/okd/pkg/shutdown"
	"github.com/flynn/okd/pkg/version"
	"github.com/flynn/okd/server"
	"github.com/inconshreveable/log15"
)

const (
	// DefaultHost is the fixed bind host.
	DefaultHost = "0.0.0.0"

	// DefaultPort is used if PORT is unset or invalid.
	DefaultPort = 3000

	// ShutdownTimeout bounds how long Close waits for in-flight requests.
	ShutdownTimeout = 5 * time.Second
)

func main() {
	defer shutdown.Exit()

	m := NewMain()
	m.ParseEnv(os.Getenv)

	if err := m.Run(); err != nil {
		shutdown.Fatal(err)
	}
	shutdown.BeforeExit(func() { m.Close() })
	<-(chan struct{})(nil)
}

// Main represent the main program.
type Main struct {
	ln     net.Listener
	server *http.Server

	// Bind address for the HTTP listener.
	Addr string

	Logger log15.Logger

	// Standard output
	Stdout io.Writer
	Stderr io.Writer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{
		Addr:   net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort)),
		Logger: log15.New("app", "okd"),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Listener returns the program's listener.
func (m *Main) Listener() net.Listener { return m.ln }

// ParseEnv reads configuration through getenv. PORT selects the listen
// port; an empty, non-numeric or out of range value falls back to
// DefaultPort.
func (m *Main) ParseEnv(getenv func(string) string) {
	port := DefaultPort
	if s := getenv("PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 && p <= 65535 {
			port = p
		} else {
			m.Logger.Warn("ignoring invalid PORT", "value", s, "default", DefaultPort)
		}
	}
	m.Addr = net.JoinHostPort(DefaultHost, strconv.Itoa(port))
}

// Run opens the listener and starts serving in the background.
func (m *Main) Run() error {
	m.Logger.SetHandler(log15.StreamHandler(m.Stderr, log15.LogfmtFormat()))

	m.Logger.Info("opening port", "addr", m.Addr)
	ln, err := keepalive.Listen("tcp", m.Addr)
	if err != nil {
		m.Logger.Error("error opening port", "err", err)
		return err
	}
	m.ln = ln

	h := server.NewHandler()
	h.Logger = m.Logger.New("component", "http")
	m.server = server.NewServer(h)

	m.Logger.Info("listening", "addr", ln.Addr().String(), "version", version.String())
	go func() {
		if err := m.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			m.Logger.Error("error serving http", "err", err)
		}
	}()

	return nil
}

// Close cleanly shuts down the program.
func (m *Main) Close() error {
	logger := m.Logger.New("fn", "Close")

	if m.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := m.server.Shutdown(ctx); err != nil {
			logger.Error("error shutting down server", "err", err)
		}
	} else if m.ln != nil {
		if err := m.ln.Close(); err != nil {
			logger.Error("error closing listener", "err", err)
		}
	}
	return nil
}
