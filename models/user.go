package models

import "time"

type Role string

const (
	RoleSubscriber Role = "subscriber"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Name       string    `json:"name"` // local-part of the email
	JoinedDate time.Time `json:"joinedDate"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsSubscriber() bool {
	return u != nil && u.Role == RoleSubscriber
}
