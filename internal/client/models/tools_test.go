package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	p := StringPtr("x")
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestItemCreate_OmitsBlankOptionalFields(t *testing.T) {
	b, err := json.Marshal(ItemCreate{Name: "Rope"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Rope"}`, string(b))
}

func TestStoryCreate_SendsEmptyIDLists(t *testing.T) {
	b, err := json.Marshal(StoryCreate{Title: "Prologue", ItemIDs: []string{}, MonsterIDs: []string{}, NPCIDs: []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Prologue","synopsis":null,"item_ids":[],"monster_ids":[],"npc_ids":[]}`, string(b))
}
