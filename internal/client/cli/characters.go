package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
)

var getInt = GetInt

func (a *App) characters(ctx context.Context, args []string) error {
	list, err := a.api.Characters(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		emptyNotice(a.out, "characters", "newcharacter")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{c.ID, c.Name, c.Race, c.CharacterClass, strconv.Itoa(c.Level)})
	}
	table(a.out, []string{"ID", "NAME", "RACE", "CLASS", "LEVEL"}, rows)
	return nil
}

func (a *App) character(ctx context.Context, args []string) error {
	c, err := a.api.Character(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n  Race:  %s\n  Class: %s\n  Level: %d\n", c.Name, c.Race, c.CharacterClass, c.Level)
	return nil
}

func (a *App) newCharacter(ctx context.Context, args []string) error {
	name, err := getRequiredText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	race, err := getRequiredText(a.reader, "Race", a.out)
	if err != nil {
		return err
	}
	class, err := getRequiredText(a.reader, "Class", a.out)
	if err != nil {
		return err
	}
	level, err := getInt(a.reader, "Level", 1, a.out)
	if err != nil {
		return err
	}

	c, err := a.api.CreateCharacter(ctx, models.CharacterCreate{
		Name:           name,
		Race:           race,
		CharacterClass: class,
		Level:          level,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s the %s %s joined your roster (id %s).\n", c.Name, c.Race, c.CharacterClass, c.ID)
	return nil
}
