package models

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestDeclined JoinRequestStatus = "declined"
)

// PendingRequests returns the join requests still awaiting the master.
func (t Table) PendingRequests() []JoinRequest {
	var out []JoinRequest
	for _, r := range t.JoinRequests {
		if r.Status == JoinRequestPending {
			out = append(out, r)
		}
	}
	return out
}

type JoinRequest struct {
	ID     string            `json:"id"`
	UserID string            `json:"user_id"`
	Status JoinRequestStatus `json:"status"`
	User   UserBase          `json:"user"`
}

// Table is a game table run by a master around one story.
type Table struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description"`
	MasterID     string        `json:"master_id"`
	StoryID      string        `json:"story_id"`
	Story        *Story        `json:"story,omitempty"`
	Players      []UserBase    `json:"players"`
	JoinRequests []JoinRequest `json:"join_requests"`
}

type TableCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StoryID     string  `json:"story_id"`
}
