package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
)

func (a *App) tables(ctx context.Context, args []string) error {
	list, err := a.api.Tables(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		emptyNotice(a.out, "tables", "newtable")
		return nil
	}

	me, _ := a.store.CurrentIdentity()
	rows := make([][]string, 0, len(list))
	var mastered []models.Table
	for _, t := range list {
		role := ""
		if t.MasterID == me.UserID {
			role = "master"
			mastered = append(mastered, t)
		}
		rows = append(rows, []string{t.ID, t.Title, strconv.Itoa(len(t.Players)), role})
	}
	table(a.out, []string{"ID", "TITLE", "PLAYERS", "ROLE"}, rows)

	for _, t := range mastered {
		pending := t.PendingRequests()
		if len(pending) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "\nPending requests for %q:\n", t.Title)
		reqRows := make([][]string, 0, len(pending))
		for _, r := range pending {
			reqRows = append(reqRows, []string{r.ID, r.User.Username, r.User.Email})
		}
		table(a.out, []string{"REQUEST", "USER", "E-MAIL"}, reqRows)
	}
	return nil
}

func (a *App) newTable(ctx context.Context, args []string) error {
	title, err := getRequiredText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	storyID, err := getRequiredText(a.reader, "Story ID (see 'stories')", a.out)
	if err != nil {
		return err
	}

	t, err := a.api.CreateTable(ctx, models.TableCreate{
		Title:       title,
		Description: models.StringPtr(desc),
		StoryID:     storyID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Table %q opened (id %s).\n", t.Title, t.ID)
	return nil
}

func (a *App) join(ctx context.Context, args []string) error {
	if err := a.api.JoinTable(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Join request sent. The master will review it.")
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	if err := a.api.ApproveJoinRequest(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Request approved.")
	return nil
}

func (a *App) decline(ctx context.Context, args []string) error {
	if err := a.api.DeclineJoinRequest(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Request declined.")
	return nil
}
