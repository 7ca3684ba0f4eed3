package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/services"
)

// Input indirections, swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getRequiredText = GetRequiredText
	getPassword     = GetPassword
)

// register collects the sign-up form. The account is created but the user
// still has to log in, as on the web client.
func (a *App) register(ctx context.Context, args []string) error {
	username, err := getRequiredText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getRequiredText(a.reader, "E-mail", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.SignUp(ctx, services.SignUpForm{
		Username: username,
		Email:    email,
		Password: password,
		Confirm:  confirm,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created. Use 'login' to sign in.\n", user.Username)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var (
		username string
		err      error
	)
	if len(args) > 0 {
		username = args[0]
	} else if username, err = getRequiredText(a.reader, "Username", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	id, err := a.auth.SignIn(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "sign in failed", "username", username, "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", id.Username)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not signed in.")
		return nil
	}
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) whoami(ctx context.Context, args []string) error {
	id, ok := a.store.CurrentIdentity()
	if !ok {
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %s)\n", id.Username, id.UserID)
	return nil
}
