package models

// UserBase is the public part of a user record.
type UserBase struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is sent to /token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the issued credential.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserProfile is the /users/me view.
type UserProfile struct {
	ID                      string  `json:"id"`
	Username                string  `json:"username"`
	Email                   string  `json:"email"`
	Bio                     *string `json:"bio"`
	AvatarURL               *string `json:"avatar_url"`
	IsActive                bool    `json:"is_active"`
	NotifyOnJoinRequest     bool    `json:"notify_on_join_request"`
	NotifyOnRequestApproved bool    `json:"notify_on_request_approved"`
	NotifyOnNewStory        bool    `json:"notify_on_new_story"`
}

// UserUpdate changes profile fields; nil fields are left alone.
type UserUpdate struct {
	Email *string `json:"email,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

// NotificationSettings toggles e-mail notifications; nil fields are left alone.
type NotificationSettings struct {
	NotifyOnJoinRequest     *bool `json:"notify_on_join_request,omitempty"`
	NotifyOnRequestApproved *bool `json:"notify_on_request_approved,omitempty"`
	NotifyOnNewStory        *bool `json:"notify_on_new_story,omitempty"`
}
