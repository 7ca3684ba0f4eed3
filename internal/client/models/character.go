package models

type Character struct {
	ID             string `json:"id"`
	OwnerID        string `json:"owner_id"`
	Name           string `json:"name"`
	Race           string `json:"race"`
	CharacterClass string `json:"character_class"`
	Level          int    `json:"level"`
}

// CharacterCreate starts at level 1 when Level is zero.
type CharacterCreate struct {
	Name           string `json:"name"`
	Race           string `json:"race"`
	CharacterClass string `json:"character_class"`
	Level          int    `json:"level,omitempty"`
}
