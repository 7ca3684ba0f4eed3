package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
)

var (
	getMultiline = GetMultiline
	getList      = GetList
)

func (a *App) items(ctx context.Context, args []string) error {
	list, err := a.api.Items(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		emptyNotice(a.out, "items", "newitem")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, it := range list {
		rows = append(rows, []string{it.ID, it.Name, it.Type, it.Rarity})
	}
	table(a.out, []string{"ID", "NAME", "TYPE", "RARITY"}, rows)
	return nil
}

func (a *App) newItem(ctx context.Context, args []string) error {
	name, err := getRequiredText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	desc, err := getMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	typ, err := getSimpleText(a.reader, "Type [Mundane]", a.out)
	if err != nil {
		return err
	}
	rarity, err := getSimpleText(a.reader, "Rarity [Common]", a.out)
	if err != nil {
		return err
	}

	it, err := a.api.CreateItem(ctx, models.ItemCreate{
		Name:        name,
		Description: models.StringPtr(desc),
		Type:        typ,
		Rarity:      rarity,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item %q created (id %s).\n", it.Name, it.ID)
	return nil
}

func (a *App) monsters(ctx context.Context, args []string) error {
	list, err := a.api.Monsters(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		emptyNotice(a.out, "monsters", "newmonster")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		rows = append(rows, []string{m.ID, m.Name, m.Size + " " + m.Type, strconv.Itoa(m.ArmorClass), m.HitPoints, m.ChallengeRating})
	}
	table(a.out, []string{"ID", "NAME", "KIND", "AC", "HP", "CR"}, rows)
	return nil
}

func (a *App) newMonster(ctx context.Context, args []string) error {
	var in models.MonsterCreate
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &in.Name},
		{"Size (e.g. Medium)", &in.Size},
		{"Type (e.g. Undead)", &in.Type},
		{"Hit points (e.g. 22 (5d8))", &in.HitPoints},
		{"Speed (e.g. 30 ft.)", &in.Speed},
		{"Challenge rating (e.g. 1/2)", &in.ChallengeRating},
	}
	for _, f := range fields {
		v, err := getRequiredText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	ac, err := getInt(a.reader, "Armor class", 10, a.out)
	if err != nil {
		return err
	}
	in.ArmorClass = ac

	actions, err := getMultiline(a.reader, "Actions (optional)", a.out)
	if err != nil {
		return err
	}
	in.Actions = models.StringPtr(actions)

	m, err := a.api.CreateMonster(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Monster %q created (id %s).\n", m.Name, m.ID)
	return nil
}

func (a *App) npcs(ctx context.Context, args []string) error {
	list, err := a.api.NPCs(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		emptyNotice(a.out, "NPCs", "newnpc")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		rows = append(rows, []string{n.ID, n.Name, deref(n.Role), deref(n.Location)})
	}
	table(a.out, []string{"ID", "NAME", "ROLE", "LOCATION"}, rows)
	return nil
}

func (a *App) newNPC(ctx context.Context, args []string) error {
	name, err := getRequiredText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	var opt [3]string
	for i, p := range []string{"Role (optional)", "Location (optional)", "Description (optional)"} {
		if opt[i], err = getSimpleText(a.reader, p, a.out); err != nil {
			return err
		}
	}
	notes, err := getMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	n, err := a.api.CreateNPC(ctx, models.NPCCreate{
		Name:        name,
		Role:        models.StringPtr(opt[0]),
		Location:    models.StringPtr(opt[1]),
		Description: models.StringPtr(opt[2]),
		Notes:       models.StringPtr(notes),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "NPC %q created (id %s).\n", n.Name, n.ID)
	return nil
}

func (a *App) stories(ctx context.Context, args []string) error {
	list, err := a.api.Stories(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		emptyNotice(a.out, "stories", "newstory")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{s.ID, s.Title,
			strconv.Itoa(len(s.Items)), strconv.Itoa(len(s.Monsters)), strconv.Itoa(len(s.NPCs))})
	}
	table(a.out, []string{"ID", "TITLE", "ITEMS", "MONSTERS", "NPCS"}, rows)
	return nil
}

func (a *App) newStory(ctx context.Context, args []string) error {
	title, err := getRequiredText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	synopsis, err := getMultiline(a.reader, "Synopsis (optional)", a.out)
	if err != nil {
		return err
	}
	itemIDs, err := getList(a.reader, "Item IDs", a.out)
	if err != nil {
		return err
	}
	monsterIDs, err := getList(a.reader, "Monster IDs", a.out)
	if err != nil {
		return err
	}
	npcIDs, err := getList(a.reader, "NPC IDs", a.out)
	if err != nil {
		return err
	}

	s, err := a.api.CreateStory(ctx, models.StoryCreate{
		Title:      title,
		Synopsis:   models.StringPtr(synopsis),
		ItemIDs:    itemIDs,
		MonsterIDs: monsterIDs,
		NPCIDs:     npcIDs,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Story %q created (id %s).\n", s.Title, s.ID)
	return nil
}
