package service

import (
	"github.com/buhgalterija/backoffice/internal/core/domain"
)

// GuardState is the route guard's view of the session.
type GuardState int

const (
	GuardLoading GuardState = iota
	GuardAuthenticated
	GuardUnauthenticated
)

func (s GuardState) String() string {
	switch s {
	case GuardLoading:
		return "loading"
	case GuardAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Outcome is what the guard tells the router to do with a navigation.
type Outcome int

const (
	OutcomeRender Outcome = iota
	OutcomePlaceholder
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRender:
		return "render"
	case OutcomePlaceholder:
		return "placeholder"
	default:
		return "redirect"
	}
}

// Decision is the result of RouteGuard.Decide.
type Decision struct {
	Outcome  Outcome
	State    GuardState
	Location string         // set for OutcomeRedirect
	Session  domain.Session // set when State is GuardAuthenticated
}

// SessionReader is the part of SessionStore the guard consults.
type SessionReader interface {
	IsLoading() bool
	Current() (domain.Session, bool)
}

// RouteGuard decides per navigation whether to render the requested view,
// show a loading placeholder or redirect to the login view. It only answers
// "is there a session"; role checks belong to the views.
type RouteGuard struct {
	sessions  SessionReader
	loginPath string
}

func NewRouteGuard(sessions SessionReader, loginPath string) *RouteGuard {
	if loginPath == "" {
		loginPath = "/auth"
	}
	return &RouteGuard{sessions: sessions, loginPath: loginPath}
}

// LoginPath is where unauthenticated visitors are sent.
func (g *RouteGuard) LoginPath() string {
	return g.loginPath
}

// State derives the guard state from the session store.
func (g *RouteGuard) State() (GuardState, domain.Session) {
	if g.sessions.IsLoading() {
		return GuardLoading, domain.Session{}
	}
	if sess, ok := g.sessions.Current(); ok && sess.Valid() {
		return GuardAuthenticated, sess
	}
	return GuardUnauthenticated, domain.Session{}
}

// Decide applies the guard to path. The login view always renders, in any
// state. The originally requested path is not preserved on redirect.
func (g *RouteGuard) Decide(path string) Decision {
	state, sess := g.State()

	if path == g.loginPath {
		return Decision{Outcome: OutcomeRender, State: state, Session: sess}
	}

	switch state {
	case GuardLoading:
		return Decision{Outcome: OutcomePlaceholder, State: state}
	case GuardUnauthenticated:
		return Decision{Outcome: OutcomeRedirect, State: state, Location: g.loginPath}
	default:
		return Decision{Outcome: OutcomeRender, State: state, Session: sess}
	}
}
