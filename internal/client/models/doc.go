// Package models defines the JSON shapes exchanged with the Dungeon Keeper
// backend: users, tables, characters and the creation tools (items, monsters,
// NPCs, stories).
package models
