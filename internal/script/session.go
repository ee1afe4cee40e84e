package script

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/aether/internal/logging"
	"github.com/mesh-intelligence/aether/pkg/types"
)

// Session is the host that script invocations run against. It embeds a
// Bag, so every bag operation is available directly as well as through
// convention dispatch.
type Session struct {
	types.Bag

	// ID is a UUID v7 identifying the session in log output.
	ID uuid.UUID

	log zerolog.Logger
}

// Result records the outcome of one invocation.
type Result struct {
	Call  string `json:"call" yaml:"call"`
	Line  int    `json:"line,omitempty" yaml:"line,omitempty"`
	Value any    `json:"value" yaml:"value"`
	Self  bool   `json:"self,omitempty" yaml:"self,omitempty"` // The call returned the session for chaining.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewSession returns an empty session with a fresh ID.
func NewSession() (*Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	logger := logging.GetLogger("script")
	return &Session{
		ID:  id,
		log: logger.With().Str("session", id.String()).Logger(),
	}, nil
}

// Run dispatches each invocation in order and returns one Result per
// invocation attempted.
//
// A failed invocation stops the run and its error is returned, unless
// keepGoing is set; then the remaining invocations still run and all
// errors are returned joined.
func (s *Session) Run(invs []Invocation, keepGoing bool) ([]Result, error) {
	results := make([]Result, 0, len(invs))
	var errs []error
	for _, inv := range invs {
		res, err := s.invoke(inv)
		results = append(results, res)
		if err == nil {
			continue
		}
		if inv.Line > 0 {
			err = &LineError{Line: inv.Line, Err: err}
		}
		if !keepGoing {
			return results, err
		}
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}

func (s *Session) invoke(inv Invocation) (Result, error) {
	res := Result{Call: inv.Name, Line: inv.Line}

	got, err := types.Call(s, inv.Name, inv.Args...)
	if err != nil {
		s.log.Warn().Err(err).Str("call", inv.Name).Int("line", inv.Line).Msg("Call rejected")
		res.Error = err.Error()
		return res, err
	}

	if host, ok := got.(*Session); ok && host == s {
		res.Self = true
	} else {
		res.Value = s.ordered(inv.Name, got)
	}
	s.log.Debug().
		Str("call", inv.Name).
		Interface("args", inv.Args).
		Bool("self", res.Self).
		Int("keys", s.Len()).
		Msg("Call dispatched")
	return res, nil
}

// ordered swaps a whole-store result ("get", "is") for its insertion-ordered
// form. Other results are returned unchanged.
func (s *Session) ordered(name string, got any) any {
	op, key, _ := types.Resolve(name)
	if key != "" {
		return got
	}
	switch op {
	case types.OpGet:
		return dataOf(&s.Bag)
	case types.OpIs:
		return flagsOf(&s.Bag)
	}
	return got
}
