package session

import "github.com/dmitrijs2005/dungeonkeeper/internal/client/token"

// Identity is the user profile shown by the client.
type Identity struct {
	Username string
	UserID   string
}

func identityFromClaims(c token.Claims) Identity {
	return Identity{Username: c.Subject, UserID: c.UserID}
}

// State is an immutable snapshot handed to subscribers.
type State struct {
	Active   bool
	Identity Identity
}
