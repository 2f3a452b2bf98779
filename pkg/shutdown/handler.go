// Package shutdown coordinates process exit: hooks registered with
// BeforeExit run in reverse order before the process exits, whether the exit
// comes from Exit, Fatal or SIGINT/SIGTERM.
package shutdown

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// exitFunc and stderr are replaced in tests.
var (
	exitFunc           = os.Exit
	stderr   io.Writer = os.Stderr
)

var h = newHandler()

type handler struct {
	active atomic.Value
	mtx    sync.Mutex
	stack  []func()
}

func newHandler() *handler {
	h := &handler{}
	h.active.Store(false)
	go h.wait()
	return h
}

// IsActive reports whether the process has started exiting.
func IsActive() bool {
	return h.active.Load().(bool)
}

// BeforeExit registers f to run before the process exits.
func BeforeExit(f func()) {
	h.mtx.Lock()
	h.stack = append(h.stack, f)
	h.mtx.Unlock()
}

// Exit runs the exit hooks and exits with code 0. When deferred from main it
// re-raises any panic after the hooks have run.
func Exit() {
	h.exit(nil, 0, recover())
}

func ExitWithCode(code int) {
	h.exit(nil, code, recover())
}

// Fatal runs the exit hooks, writes v to stderr and exits with code 1.
func Fatal(v ...interface{}) {
	h.exit(fmt.Errorf("%s", fmt.Sprint(v...)), 1, recover())
}

func Fatalf(format string, v ...interface{}) {
	h.exit(fmt.Errorf(format, v...), 1, recover())
}

func (h *handler) wait() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	h.exit(nil, 0, nil)
}

func (h *handler) exit(err error, code int, serious interface{}) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.active.Store(true)
	for i := len(h.stack) - 1; i >= 0; i-- {
		h.stack[i]()
	}
	h.stack = nil
	if serious != nil {
		panic(serious)
	}
	if err != nil {
		log.New(stderr, "", log.Lshortfile|log.Lmicroseconds).Output(3, err.Error())
	}
	exitFunc(code)
}
