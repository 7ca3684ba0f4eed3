package models

// Backup is everything the signed-in user created, as served by /backup/export.
type Backup struct {
	Characters []Character `json:"characters"`
	Items      []Item      `json:"items"`
	Monsters   []Monster   `json:"monsters"`
	NPCs       []NPC       `json:"npcs"`
	Stories    []Story     `json:"stories"`
}
