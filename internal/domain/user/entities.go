package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// Role values match the integer choices the rest of the schema stores.
type Role int

const (
	RoleProvider Role = 1
	RoleCustomer Role = 2
	RoleEmployee Role = 3
)

func (r Role) Valid() bool {
	return r == RoleProvider || r == RoleCustomer || r == RoleEmployee
}

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex:ux_users_username" json:"username"`
	PasswordHash string    `gorm:"size:128;column:password_hash" json:"-"`
	Role         Role      `gorm:"column:role" json:"role"`
	Superuser    bool      `gorm:"column:is_superuser" json:"-"`
	Active       bool      `gorm:"column:is_active;default:true" json:"-"`
	DateJoined   time.Time `gorm:"column:date_joined;autoCreateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Identity is the authenticated caller as carried in token claims.
// Role comes from the token, not a fresh DB read, same as the JWT
// setup this service fronts.
type Identity struct {
	UserID   uint64
	Username string
	Role     Role
	IsAdmin  bool
}
