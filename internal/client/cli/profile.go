package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
	"github.com/dmitrijs2005/dungeonkeeper/internal/filex"
)

var getYesNo = GetYesNo

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) printProfile(p models.UserProfile) {
	fmt.Fprintf(a.out, "%s <%s>\n", p.Username, p.Email)
	if bio := deref(p.Bio); bio != "" {
		fmt.Fprintf(a.out, "  %s\n", bio)
	}
	fmt.Fprintf(a.out, "  Notify on join request:     %s\n", onOff(p.NotifyOnJoinRequest))
	fmt.Fprintf(a.out, "  Notify on request approved: %s\n", onOff(p.NotifyOnRequestApproved))
	fmt.Fprintf(a.out, "  Notify on new story:        %s\n", onOff(p.NotifyOnNewStory))
}

func (a *App) profile(ctx context.Context, args []string) error {
	p, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.printProfile(p)

	edit, err := getYesNo(a.reader, "Edit profile?", false, a.out)
	if err != nil || !edit {
		return err
	}

	var upd models.UserUpdate
	email, err := getSimpleText(a.reader, fmt.Sprintf("E-mail [%s]", p.Email), a.out)
	if err != nil {
		return err
	}
	upd.Email = models.StringPtr(email)

	bio, err := getMultiline(a.reader, "Bio (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	upd.Bio = models.StringPtr(bio)

	if upd.Email == nil && upd.Bio == nil {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	p, err = a.api.UpdateMe(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	a.printProfile(p)
	return nil
}

func (a *App) notifications(ctx context.Context, args []string) error {
	p, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	join, err := getYesNo(a.reader, "E-mail me when someone asks to join my table?", p.NotifyOnJoinRequest, a.out)
	if err != nil {
		return err
	}
	approved, err := getYesNo(a.reader, "E-mail me when my join request is approved?", p.NotifyOnRequestApproved, a.out)
	if err != nil {
		return err
	}
	story, err := getYesNo(a.reader, "E-mail me about new stories?", p.NotifyOnNewStory, a.out)
	if err != nil {
		return err
	}

	p, err = a.api.UpdateNotificationSettings(ctx, models.NotificationSettings{
		NotifyOnJoinRequest:     &join,
		NotifyOnRequestApproved: &approved,
		NotifyOnNewStory:        &story,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Notification settings saved.")
	a.printProfile(p)
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	path := args[0]

	b, err := a.api.ExportBackup(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Fprintf(a.out, "Backup written to %s (%d characters, %d items, %d monsters, %d NPCs, %d stories).\n",
		path, len(b.Characters), len(b.Items), len(b.Monsters), len(b.NPCs), len(b.Stories))
	return nil
}
