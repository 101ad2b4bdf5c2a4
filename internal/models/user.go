package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level stored on a user document.
type Role string

const (
	RoleBorrower Role = "borrower"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known levels.
func (r Role) Valid() bool {
	switch r {
	case RoleBorrower, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// AtLeast reports whether the role grants the permissions of min.
// borrower < manager < admin.
func (r Role) AtLeast(min Role) bool {
	switch min {
	case RoleBorrower:
		return r.Valid()
	case RoleManager:
		return r == RoleManager || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	}
	return false
}

// UserStatus is the account state stored on a user document.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusSuspended
}

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"passwordHash,omitempty" json:"-"` // Hide from JSON responses
	Role          Role               `bson:"role" json:"role"`
	Status        UserStatus         `bson:"status" json:"status"`
	SuspendReason string             `bson:"suspendReason,omitempty" json:"suspendReason,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
