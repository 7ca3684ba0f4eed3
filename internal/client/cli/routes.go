package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by Dispatch for names not in the route table.
var ErrUnknownCommand = errors.New("unknown command")

type route struct {
	name      string
	aliases   []string
	args      string
	nargs     int
	short     string
	protected bool
	replOnly  bool
	run       func(a *App, ctx context.Context, args []string) error
}

func (r route) use() string {
	if r.args == "" {
		return r.name
	}
	return r.name + " " + r.args
}

// routes lists every command. Protected ones are reachable only with an
// active session; the gate sends everyone else to login.
func routes() []route {
	return []route{
		{name: "help", short: "show available commands", replOnly: true, run: (*App).help},
		{name: "register", short: "create an account", run: (*App).register},
		{name: "login", args: "[username]", short: "sign in", run: (*App).login},
		{name: "logout", short: "sign out", run: (*App).logout},

		{name: "whoami", short: "show the signed-in user", protected: true, run: (*App).whoami},
		{name: "profile", short: "show or edit your profile", protected: true, run: (*App).profile},
		{name: "notifications", short: "change e-mail notification settings", protected: true, run: (*App).notifications},
		{name: "export", args: "<file>", nargs: 1, short: "download a backup of everything you created", protected: true, run: (*App).export},

		{name: "tables", aliases: []string{"t"}, short: "list game tables", protected: true, run: (*App).tables},
		{name: "newtable", short: "open a new table", protected: true, run: (*App).newTable},
		{name: "join", args: "<table-id>", nargs: 1, short: "ask to join a table", protected: true, run: (*App).join},
		{name: "approve", args: "<request-id>", nargs: 1, short: "approve a join request", protected: true, run: (*App).approve},
		{name: "decline", args: "<request-id>", nargs: 1, short: "decline a join request", protected: true, run: (*App).decline},

		{name: "characters", aliases: []string{"c"}, short: "list your characters", protected: true, run: (*App).characters},
		{name: "character", args: "<id>", nargs: 1, short: "show a character sheet", protected: true, run: (*App).character},
		{name: "newcharacter", short: "create a character", protected: true, run: (*App).newCharacter},

		{name: "items", short: "list your items", protected: true, run: (*App).items},
		{name: "newitem", short: "create an item", protected: true, run: (*App).newItem},
		{name: "monsters", short: "list your monsters", protected: true, run: (*App).monsters},
		{name: "newmonster", short: "create a monster", protected: true, run: (*App).newMonster},
		{name: "npcs", short: "list your NPCs", protected: true, run: (*App).npcs},
		{name: "newnpc", short: "create an NPC", protected: true, run: (*App).newNPC},
		{name: "stories", short: "list your stories", protected: true, run: (*App).stories},
		{name: "newstory", short: "write a story from your items, monsters and NPCs", protected: true, run: (*App).newStory},
	}
}

func lookupRoute(name string) (route, bool) {
	for _, r := range routes() {
		if r.name == name {
			return r, true
		}
		for _, al := range r.aliases {
			if al == name {
				return r, true
			}
		}
	}
	return route{}, false
}

// Dispatch runs the named command, consulting the gate on protected routes.
func (a *App) Dispatch(ctx context.Context, name string, args []string) error {
	r, ok := lookupRoute(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(args) < r.nargs {
		return fmt.Errorf("usage: %s", r.use())
	}

	h := func(ctx context.Context, args []string) error {
		return r.run(a, ctx, args)
	}
	if r.protected {
		h = a.gate.Guard(r.name, h, a.redirect)
	}
	return h(ctx, args)
}

// redirect is where the gate sends denied navigations.
func (a *App) redirect(ctx context.Context, target string) error {
	fmt.Fprintln(a.out, "You need to sign in first.")
	return a.Dispatch(ctx, target, nil)
}

func (a *App) help(ctx context.Context, args []string) error {
	loggedIn := a.isLoggedIn()
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, r := range routes() {
		if r.protected && !loggedIn {
			continue
		}
		if loggedIn && (r.name == "register" || r.name == "login") {
			continue
		}
		if !loggedIn && r.name == "logout" {
			continue
		}
		fmt.Fprintf(&b, "  %-22s %s\n", r.use(), r.short)
	}
	fmt.Fprintf(&b, "  %-22s %s\n", "exit | quit", "leave the program")
	fmt.Fprint(a.out, b.String())
	return nil
}
