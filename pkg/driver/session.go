package driver

import (
	"fmt"
	"os"
	"strings"

	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/interpreter"
	"largo/interpreter-go/pkg/parser"
	"largo/interpreter-go/pkg/reason"
	"largo/interpreter-go/pkg/runtime"
)

// Logger receives debug traces from a session. *logger.Logger from
// github.com/jcgregorio/logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Session is one read/print conversation: an interpreter with its own
// environment, plus the policy for turning input lines into results.
type Session struct {
	cfg    *Config
	interp *interpreter.Interpreter
	log    Logger
}

// NewSession creates a session with a fresh builtin environment. A nil cfg
// means DefaultConfig; a nil log discards traces.
func NewSession(cfg *Config, log Logger) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Session{cfg: cfg, interp: interpreter.New(), log: log}
}

// Config returns the session settings.
func (s *Session) Config() *Config {
	return s.cfg
}

// Environment exposes the session's symbol table.
func (s *Session) Environment() *runtime.Environment {
	return s.interp.GlobalEnvironment()
}

// IsQuit reports whether line is the configured quit command.
func (s *Session) IsQuit(line string) bool {
	return strings.TrimSpace(line) == s.cfg.QuitCommand
}

// NeedsMore reports whether src still has unclosed parens, meaning a REPL
// should keep reading before evaluating.
func (s *Session) NeedsMore(src string) bool {
	return parser.Depth(parser.Tokenize(src)) > 0
}

// Eval evaluates one input and renders the result. Blank input yields "".
func (s *Session) Eval(src string) (string, error) {
	tokens := parser.Tokenize(src)
	if len(tokens) == 0 {
		return "", nil
	}
	s.log.Debugf("tokens: %q", tokens)

	var forms []ast.Expression
	switch s.cfg.TrailingTokens {
	case TrailingIgnore, TrailingReject:
		expr, rest, err := parser.Parse(tokens)
		if err != nil {
			return "", err
		}
		if len(rest) > 0 {
			if s.cfg.TrailingTokens == TrailingReject {
				return "", reason.New("unexpected trailing tokens after expression")
			}
			s.log.Debugf("ignoring %d trailing tokens", len(rest))
		}
		forms = []ast.Expression{expr}
	default:
		var err error
		forms, err = interpreter.ReadAll(src)
		if err != nil {
			return "", err
		}
	}

	var last runtime.Value
	for _, form := range forms {
		s.log.Debugf("form: %s", form)
		val, err := s.interp.Evaluate(form, s.Environment())
		if err != nil {
			return "", err
		}
		last = val
	}
	return interpreter.ValueToString(last), nil
}

// EvalProgram evaluates every form in src and renders each result.
func (s *Session) EvalProgram(src string) ([]string, error) {
	values, err := s.interp.EvaluateProgram(src)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, val := range values {
		out = append(out, interpreter.ValueToString(val))
	}
	return out, nil
}

// RunFile evaluates a source file with EvalProgram.
func (s *Session) RunFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s.log.Debugf("running %s (%d bytes)", path, len(data))
	return s.EvalProgram(string(data))
}
