package models

import (
	"fmt"
	"strings"
	"time"
)

// User is the signed-in identity. Exactly one current user exists or none.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser builds a user with a fresh timestamp-based id. When name is empty
// the local part of the email is used as the display name.
func NewUser(email, name string) *User {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &User{
		ID:        fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
