package models

// Defaults applied by the backend when a field is left empty.
const (
	DefaultItemType   = "Mundane"
	DefaultItemRarity = "Common"
)

type Item struct {
	ID          string  `json:"id"`
	CreatorID   string  `json:"creator_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
	Rarity      string  `json:"rarity"`
}

type ItemCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type,omitempty"`
	Rarity      string  `json:"rarity,omitempty"`
}

type Monster struct {
	ID              string  `json:"id"`
	CreatorID       string  `json:"creator_id"`
	Name            string  `json:"name"`
	Size            string  `json:"size"`
	Type            string  `json:"type"`
	ArmorClass      int     `json:"armor_class"`
	HitPoints       string  `json:"hit_points"`
	Speed           string  `json:"speed"`
	Actions         *string `json:"actions"`
	ChallengeRating string  `json:"challenge_rating"`
}

type MonsterCreate struct {
	Name            string  `json:"name"`
	Size            string  `json:"size"`
	Type            string  `json:"type"`
	ArmorClass      int     `json:"armor_class"`
	HitPoints       string  `json:"hit_points"`
	Speed           string  `json:"speed"`
	Actions         *string `json:"actions,omitempty"`
	ChallengeRating string  `json:"challenge_rating"`
}

type NPC struct {
	ID          string  `json:"id"`
	CreatorID   string  `json:"creator_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Role        *string `json:"role"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

type NPCCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Role        *string `json:"role,omitempty"`
	Location    *string `json:"location,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// Story bundles the items, monsters and NPCs a master prepared.
type Story struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id"`
	Title     string    `json:"title"`
	Synopsis  *string   `json:"synopsis"`
	Items     []Item    `json:"items"`
	Monsters  []Monster `json:"monsters"`
	NPCs      []NPC     `json:"npcs"`
}

type StoryCreate struct {
	Title      string   `json:"title"`
	Synopsis   *string  `json:"synopsis"`
	ItemIDs    []string `json:"item_ids"`
	MonsterIDs []string `json:"monster_ids"`
	NPCIDs     []string `json:"npc_ids"`
}

// StringPtr returns nil for blank input so optional fields are omitted.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
