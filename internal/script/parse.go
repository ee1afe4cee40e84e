// Package script drives convention-named bag calls from text: one call per
// script line or command-line argument, run against a Session host.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Parse errors.
var (
	ErrInvalidName  = errors.New("invalid call name")
	ErrInvalidValue = errors.New("invalid value literal")
)

// Invocation is a single call to dispatch against a Session.
type Invocation struct {
	Name string
	Args []any
	Line int // 1-based script line; 0 when not read from a script.
}

// LineError attaches a script line number to an error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads one invocation per line in the form
//
//	<name> [value]
//
// where value is a YAML flow literal: 2, "a b", [1, 2], {k: v}, ~ (nil).
// Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Invocation, error) {
	var invs []Invocation
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, rest := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			name, rest = line[:i], strings.TrimSpace(line[i:])
		}
		inv, err := newInvocation(name, rest)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		inv.Line = lineNo
		invs = append(invs, inv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return invs, nil
}

// ParseArg parses a command-line argument of the form name or name=value.
func ParseArg(arg string) (Invocation, error) {
	name, value, _ := strings.Cut(arg, "=")
	return newInvocation(name, value)
}

func newInvocation(name, literal string) (Invocation, error) {
	if !validName(name) {
		return Invocation{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	inv := Invocation{Name: name}
	if literal == "" {
		return inv, nil
	}
	v, err := parseValue(literal)
	if err != nil {
		return Invocation{}, err
	}
	inv.Args = []any{v}
	return inv, nil
}

// validName accepts identifier-like names: a letter followed by letters or digits.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func parseValue(literal string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(literal), &v); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidValue, literal, err)
	}
	v, err := normalize(v)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidValue, literal, err)
	}
	return v, nil
}

// normalize rewrites decoded YAML into values every output format can
// encode: mapping keys become strings and non-finite numbers are rejected.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			key := fmt.Sprint(k)
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("duplicate key %q", key)
			}
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
		return m, nil
	case []any:
		for i, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("non-finite number %v", t)
		}
	}
	return v, nil
}
