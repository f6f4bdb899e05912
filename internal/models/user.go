package models

import "time"

const (
	RoleMember = "member"
	RoleLeader = "leader"
	RoleAdmin  = "admin"
)

// User is keyed by its unique name inside Document.Users; the name is not
// repeated inside the struct.
type User struct {
	PasswordHash    string    `json:"password_hash"`
	Role            string    `json:"role"`
	Leader          string    `json:"leader,omitempty"`
	Members         []string  `json:"members"`
	PendingRequests []string  `json:"pending_requests"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

func (user *User) IsLeader() bool {
	return user.Role == RoleLeader
}

func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

func (user *User) HasLeader() bool {
	return user.Leader != ""
}

func (user *User) HasPendingRequest(member string) bool {
	for _, pending := range user.PendingRequests {
		if pending == member {
			return true
		}
	}
	return false
}

func (user *User) HasMember(member string) bool {
	for _, existing := range user.Members {
		if existing == member {
			return true
		}
	}
	return false
}
