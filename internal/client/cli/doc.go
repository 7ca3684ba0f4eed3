// Package cli provides the Dungeon Keeper command-line client.
//
// It wires configuration, local storage, the session store and the API client
// into an App, then either runs an interactive REPL or a single command.
// Commands that need an account go through the access gate: without an active
// session the user is sent to login instead.
//
// The prompt shows who is signed in ("dk (alice)> ") and is kept current by a
// session store subscription, so login and logout are reflected at once.
package cli
