package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/client"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/token/tokentest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls [][]string
	errs  map[string]error
}

func (f *fakeExec) Dispatch(ctx context.Context, name string, args []string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err, ok := f.errs[name]; ok {
		return err
	}
	return nil
}

func TestPrompt(t *testing.T) {
	assert.Equal(t, "dk> ", prompt(""))
	assert.Equal(t, "dk (alice)> ", prompt("(alice)"))
}

func TestRunREPL_DispatchesUntilExit(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"   ",
		"join 42",
		"foobar",
		"tables",
		"exit",
		"characters",
	}, "\n")

	exec := &fakeExec{errs: map[string]error{
		"foobar": ErrUnknownCommand,
		"tables": client.ErrUnavailable,
	}}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, [][]string{{"help"}, {"join", "42"}, {"foobar"}, {"tables"}}, exec.calls)
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "The server is unavailable.")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help")), &out)
	assert.Equal(t, [][]string{{"help"}}, exec.calls)
}

func TestRunREPL_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\n")), &out)
	assert.Empty(t, exec.calls)
}

func TestRunREPL_PromptFollowsStatus(t *testing.T) {
	status := ""
	exec := &fakeExec{}
	var out bytes.Buffer
	statusFn := func() string {
		s := status
		status = "(alice)"
		return s
	}
	runREPL(context.Background(), exec, statusFn, bufio.NewReader(strings.NewReader("help\nquit\n")), &out)

	assert.True(t, strings.HasPrefix(out.String(), "dk> "))
	assert.Contains(t, out.String(), "dk (alice)> ")
}

// The prompt is driven by the session subscription: it changes on login and
// logout without the REPL asking anyone.
func TestApp_REPL_PromptTracksSession(t *testing.T) {
	h := newHarness(t, strings.Join([]string{
		"whoami",
		"alice",
		"secret",
		"whoami",
		"logout",
		"exit",
	}, "\n")+"\n", nil)
	h.backend.loginRet = tokentest.Mint(t, "alice", 7, time.Now().Add(time.Hour))

	require.NoError(t, h.app.Run(context.Background()))
	out := h.out.String()

	first := strings.Index(out, "dk> ")
	authed := strings.Index(out, "dk (alice)> ")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, authed, first)
	assert.Contains(t, out, "alice (id 7)")
	assert.Contains(t, out, "Signed out.")
	assert.Greater(t, strings.LastIndex(out, "dk> "), authed, "prompt returns to anonymous after logout")
}

func TestApp_Run_GreetsRestoredSession(t *testing.T) {
	h := newHarness(t, "exit\n", nil)
	signIn(t, h, "alice", "u-1")

	require.NoError(t, h.app.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Signed in as alice.")
}

func TestApp_REPL_PrintsCommandErrors(t *testing.T) {
	h := newHarness(t, "tables\nexit\n", nil)
	signIn(t, h, "alice", "u-1")
	h.backend.tablesErr = errors.New("boom")

	require.NoError(t, h.app.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Error: boom")
}
