package shutdown

import (
	"bytes"
	"os"
	"strings"
	"testing"

	. "github.com/flynn/go-check"
)

func Test(t *testing.T) { TestingT(t) }

var _ = Suite(&ShutdownSuite{})

type ShutdownSuite struct {
	codes  []int
	stderr bytes.Buffer
}

func (s *ShutdownSuite) SetUpTest(c *C) {
	s.codes = nil
	s.stderr.Reset()
	exitFunc = func(code int) { s.codes = append(s.codes, code) }
	stderr = &s.stderr
}

func (s *ShutdownSuite) TearDownTest(c *C) {
	exitFunc = os.Exit
	stderr = os.Stderr
	h.active.Store(false)
}

func (s *ShutdownSuite) TestExitRunsHooksInReverse(c *C) {
	var order []string
	BeforeExit(func() { order = append(order, "first") })
	BeforeExit(func() { order = append(order, "second") })

	c.Assert(IsActive(), Equals, false)
	Exit()

	c.Assert(order, DeepEquals, []string{"second", "first"})
	c.Assert(s.codes, DeepEquals, []int{0})
	c.Assert(IsActive(), Equals, true)
	c.Assert(s.stderr.Len(), Equals, 0)
}

func (s *ShutdownSuite) TestFatalWritesErrorAndExitsNonzero(c *C) {
	var closed bool
	BeforeExit(func() { closed = true })

	Fatal("error opening port 0.0.0.0:3000: address already in use")

	c.Assert(closed, Equals, true)
	c.Assert(s.codes, DeepEquals, []int{1})
	c.Assert(strings.Contains(s.stderr.String(), "address already in use"), Equals, true)
}

func (s *ShutdownSuite) TestFatalf(c *C) {
	Fatalf("bad port %q", "abc")
	c.Assert(s.codes, DeepEquals, []int{1})
	c.Assert(strings.Contains(s.stderr.String(), `bad port "abc"`), Equals, true)
}

func (s *ShutdownSuite) TestHooksRunOnce(c *C) {
	var n int
	BeforeExit(func() { n++ })
	ExitWithCode(2)
	Exit()
	c.Assert(n, Equals, 1)
	c.Assert(s.codes, DeepEquals, []int{2, 0})
}
