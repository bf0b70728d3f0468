package model

import (
	"errors"
	"fmt"
	"strings"

	"edumath-pro/internal/view"
)

var (
	// ErrAuthRequired is returned when a gated action is attempted while
	// signed out. Handlers translate it to a sign-in prompt; no state changes.
	ErrAuthRequired = errors.New("sign in required")

	// ErrValidation is the base of all user-input errors.
	ErrValidation = errors.New("validation failed")
)

// Validationf wraps ErrValidation with a user-facing message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// Sign-in methods supported by the demo auth flow.
const (
	MethodGoogle   = "Google"
	MethodFacebook = "Facebook"
	MethodPhone    = "Phone"
	MethodEmail    = "Email"
)

type User struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Method string `json:"method"`
}

// NewUser builds the demo user record for a sign-in method. There is no
// credential check anywhere in this flow: this is a demo stub, not a
// security boundary, and display names are fixed per method.
func NewUser(method, identifier string) (*User, error) {
	var name string
	switch method {
	case MethodGoogle:
		name = "John Doe"
	case MethodFacebook:
		name = "Jane Smith"
	case MethodPhone:
		name = "Phone User"
	case MethodEmail:
		if identifier == "" {
			return nil, Validationf("email address is required")
		}
		name = strings.SplitN(identifier, "@", 2)[0]
	default:
		return nil, Validationf("unsupported sign-in method %q", method)
	}

	return &User{
		Name:   name,
		Email:  identifier,
		Method: method,
	}, nil
}

// Session is the per-client state object. It replaces the original
// application's module-level auth/plan globals: one is constructed per
// browser session, recovered from the durable store when needed, and
// threaded through every handler.
type Session struct {
	ID            string
	Authenticated bool
	User          *User
	Plan          *Plan

	// PendingPhone holds the full phone number between the OTP send and
	// verify steps of the phone sign-in flow.
	PendingPhone string

	// Notice is a one-time message surfaced on the next state read and
	// cleared by it.
	Notice string

	// View is the panel state machine for this session.
	View *view.Controller
}

func NewSession(id string) *Session {
	return &Session{ID: id, View: view.NewController()}
}

// SignIn marks the session authenticated as the given user. User is present
// iff Authenticated is true.
func (s *Session) SignIn(u *User) {
	s.Authenticated = true
	s.User = u
	s.PendingPhone = ""
}

// Clear resets the session to signed-out state, dropping user and plan and
// returning the view to the main site.
func (s *Session) Clear() {
	s.Authenticated = false
	s.User = nil
	s.Plan = nil
	s.PendingPhone = ""
	s.Notice = ""
	s.View.Reset()
}

// ConsumeNotice returns the pending one-time notice and clears it.
func (s *Session) ConsumeNotice() string {
	n := s.Notice
	s.Notice = ""
	return n
}
