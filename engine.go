package symath

import (
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Engine owns the process-wide state: the function-memory mapping and the
// health flag reflecting the outcome of the most recent dispatch. Both are
// guarded by one mutex because the HTTP front end exposes a single Engine to
// concurrent callers.
type Engine struct {
	mu     sync.Mutex
	memory map[string]string
	failed bool
	log    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an engine with empty function memory and a clear health
// flag.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		memory: map[string]string{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Healthy reports whether the most recent dispatch succeeded. It is the
// read accessor consumed by the UI collaborator's status indicator.
func (e *Engine) Healthy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.failed
}

func (e *Engine) setFailed(failed bool) {
	e.mu.Lock()
	e.failed = failed
	e.mu.Unlock()
}

// Define stores a function or constant definition of the form
// "let name = body" or "let name(param) = body". Redefining a key
// overwrites it; definitions live for the Engine's lifetime.
func (e *Engine) Define(text string) string {
	body, ok := strings.CutPrefix(strings.TrimSpace(text), "let ")
	if !ok {
		return "invalid definition"
	}
	eq := strings.Index(body, "=")
	if eq < 0 {
		return "invalid definition"
	}
	key := stripSpace(body[:eq])
	val := strings.TrimSpace(body[eq+1:])
	if key == "" || val == "" || !isLetter(key[0]) {
		return "invalid definition"
	}
	if open := strings.IndexByte(key, '('); open >= 0 {
		if param, ok := innerParens(key[open:]); !ok || param == "" {
			return "invalid definition"
		}
	}
	e.mu.Lock()
	e.memory[key] = val
	e.mu.Unlock()
	e.log.Debug("definition stored", zap.String("key", key))
	return "defined " + key
}

// evalFunction recalls a stored definition: an exact bare-name match
// simplifies the stored body; otherwise a name(arg) call with a numeric
// argument substitutes the argument for the stored parameter and
// simplifies. Nothing matching reports an unknown name.
func (e *Engine) evalFunction(text string) string {
	in := stripSpace(text)
	e.mu.Lock()
	body, bare := e.memory[in]
	e.mu.Unlock()
	if bare {
		out, err := simplifyText(body)
		if err != nil {
			return e.fail(err.Error())
		}
		return out
	}

	name, arg, callOK := parseCall(in)
	if callOK {
		if _, err := strconv.ParseFloat(arg, 64); err == nil {
			e.mu.Lock()
			for key, stored := range e.memory {
				open := strings.IndexByte(key, '(')
				if open < 0 || key[:open] != name {
					continue
				}
				param, _ := innerParens(key[open:])
				e.mu.Unlock()
				substituted := strings.ReplaceAll(stored, param, "("+arg+")")
				out, err := simplifyText(substituted)
				if err != nil {
					return e.fail(err.Error())
				}
				return out
			}
			e.mu.Unlock()
		}
	}
	return "unknown variable or function"
}

// defined reports whether any stored key (bare or parameterized) uses name.
func (e *Engine) defined(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.memory[name]; ok {
		return true
	}
	for key := range e.memory {
		if open := strings.IndexByte(key, '('); open >= 0 && key[:open] == name {
			return true
		}
	}
	return false
}

// simplifyText runs the tree pipeline end to end: tokenize, parse,
// simplify, render. Parse failures collapse into the generic invalid
// expression message; lexer failures keep the offending character.
func simplifyText(text string) (string, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return "", err
	}
	tree, err := Parse(toks)
	if err != nil {
		if err == ErrDepthExceeded {
			return "", err
		}
		return "", &ParseError{Msg: "Can't simplify: invalid expression"}
	}
	return Render(tree.Simplify()), nil
}
