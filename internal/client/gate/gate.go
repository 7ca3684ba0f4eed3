// Package gate decides whether a protected view may be shown.
//
// The gate only reads the session. It never logs anyone in or out; a denied
// navigation is turned into a redirect to the entry point.
package gate

import "context"

// ActiveChecker is the part of the session store the gate needs.
type ActiveChecker interface {
	IsActive() bool
}

// Decision is the outcome for one navigation.
type Decision struct {
	Allow    bool
	Target   string
	Redirect string
}

// Handler renders a view.
type Handler func(ctx context.Context, args []string) error

// Redirector navigates to route instead of the requested view.
type Redirector func(ctx context.Context, route string) error

type Gate struct {
	session  ActiveChecker
	fallback string
}

// New returns a gate that sends anonymous users to fallback.
func New(session ActiveChecker, fallback string) *Gate {
	return &Gate{session: session, fallback: fallback}
}

// Decide is evaluated synchronously on every navigation into a protected view.
func (g *Gate) Decide(target string) Decision {
	if g.session == nil || !g.session.IsActive() {
		return Decision{Target: target, Redirect: g.fallback}
	}
	return Decision{Allow: true, Target: target}
}

// Guard wraps a protected view. When the session is not active, render is
// never called and redirect receives the fallback route.
func (g *Gate) Guard(target string, render Handler, redirect Redirector) Handler {
	return func(ctx context.Context, args []string) error {
		d := g.Decide(target)
		if !d.Allow {
			return redirect(ctx, d.Redirect)
		}
		return render(ctx, args)
	}
}
