package models

import "time"

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) HasRole(roles ...string) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}

func (s *Session) IsDoctor() bool {
	return IsDoctorRole(s.Role)
}

// SlotLock is a held redis lock over one SlotKey. Token proves ownership on release.
type SlotLock struct {
	Key       string
	Token     string
	ExpiresAt time.Time
}
