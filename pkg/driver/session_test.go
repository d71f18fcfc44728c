package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"largo/interpreter-go/pkg/reason"
	"largo/interpreter-go/pkg/runtime"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func sessionWith(policy TrailingPolicy) *Session {
	cfg := DefaultConfig()
	cfg.TrailingTokens = policy
	return NewSession(cfg, nil)
}

func TestSessionEvalRendersResults(t *testing.T) {
	s := NewSession(nil, nil)
	cases := map[string]string{
		"(+ 1 2)":         "3",
		"(+ 1 (+ 2 3 4))": "10",
		"(- 2 3)":         "-1",
		"(- 2 (+ 1 2 3))": "-4",
		"(+ 0.5 1)":       "1.5",
		"+":               "<builtin +>",
		"   ":             "",
	}
	for src, want := range cases {
		got, err := s.Eval(src)
		require.NoError(t, err, src)
		require.Equal(t, want, got, src)
	}
}

func TestSessionEvalErrors(t *testing.T) {
	s := NewSession(nil, nil)
	_, err := s.Eval("(1 2 3)")
	require.Error(t, err)
	require.Equal(t, "operator must be a function", reason.Message(err))

	_, err = s.Eval("(+ 1")
	require.Equal(t, "could not find closing `)`", reason.Message(err))
}

func TestSessionTrailingPolicies(t *testing.T) {
	src := "(+ 1 2) (- 10 4)"

	got, err := sessionWith(TrailingEvaluate).Eval(src)
	require.NoError(t, err)
	require.Equal(t, "6", got)

	got, err = sessionWith(TrailingIgnore).Eval(src)
	require.NoError(t, err)
	require.Equal(t, "3", got)

	_, err = sessionWith(TrailingReject).Eval(src)
	require.Error(t, err)
	require.Equal(t, "unexpected trailing tokens after expression", reason.Message(err))

	got, err = sessionWith(TrailingReject).Eval("(+ 1 2)")
	require.NoError(t, err)
	require.Equal(t, "3", got)
}

func TestSessionIgnoreStillRejectsBadFirstForm(t *testing.T) {
	_, err := sessionWith(TrailingIgnore).Eval(") (+ 1 2)")
	require.Equal(t, "unexpected `)`", reason.Message(err))
}

func TestSessionIsQuit(t *testing.T) {
	s := NewSession(nil, nil)
	require.True(t, s.IsQuit("quit"))
	require.True(t, s.IsQuit("  quit \n"))
	require.False(t, s.IsQuit("quit now"))
	require.False(t, s.IsQuit("(quit)"))

	cfg := DefaultConfig()
	cfg.QuitCommand = "bye"
	s = NewSession(cfg, nil)
	require.True(t, s.IsQuit("bye"))
	require.False(t, s.IsQuit("quit"))
}

func TestSessionNeedsMore(t *testing.T) {
	s := NewSession(nil, nil)
	require.True(t, s.NeedsMore("(+ 1"))
	require.True(t, s.NeedsMore("(+ 1 (+ 2 3)"))
	require.False(t, s.NeedsMore("(+ 1 2)"))
	require.False(t, s.NeedsMore(")"))
	require.False(t, s.NeedsMore(""))
}

func TestSessionsHaveIndependentEnvironments(t *testing.T) {
	a := NewSession(nil, nil)
	b := NewSession(nil, nil)
	a.Environment().Define("x", runtime.NumberValue{Val: 1})

	got, err := a.Eval("x")
	require.NoError(t, err)
	require.Equal(t, "1", got)

	_, err = b.Eval("x")
	require.Equal(t, "unexpected symbol `x`", reason.Message(err))
}

func TestSessionLogsDebugTraces(t *testing.T) {
	log := &recordingLogger{}
	s := NewSession(nil, log)
	_, err := s.Eval("(+ 1 2)")
	require.NoError(t, err)
	joined := strings.Join(log.lines, "\n")
	require.Contains(t, joined, `tokens: ["(" "+" "1" "2" ")"]`)
	require.Contains(t, joined, "form: (+,1,2)")
}

func TestSessionRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.lisp")
	if err := os.WriteFile(path, []byte("(+ 1 2)\n(- 2 3)\n+\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := NewSession(nil, nil).RunFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"3", "-1", "<builtin +>"}, out)

	_, err = NewSession(nil, nil).RunFile(filepath.Join(t.TempDir(), "missing.lisp"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
