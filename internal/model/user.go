// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// User represents a registered user that exercises are logged against.
// Users are immutable after creation and are never deleted.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// CachedUser represents user data stored in Redis.
// Uses string types for Redis hash compatibility.
type CachedUser struct {
	Username  string `redis:"username"`
	CreatedAt string `redis:"created_at"` // Unix timestamp
}

// ToUser converts CachedUser to the User domain model.
func (c *CachedUser) ToUser(id string) *User {
	user := &User{
		ID:       id,
		Username: c.Username,
	}

	if c.CreatedAt != "" {
		if ts, err := strconv.ParseInt(c.CreatedAt, 10, 64); err == nil {
			user.CreatedAt = time.Unix(ts, 0).UTC()
		}
	}

	return user
}

// ToCachedUser converts a User to its cache representation.
func (u *User) ToCachedUser() *CachedUser {
	return &CachedUser{
		Username:  u.Username,
		CreatedAt: strconv.FormatInt(u.CreatedAt.Unix(), 10),
	}
}
