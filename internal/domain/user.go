package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is created on first successful external login and refreshed on
// every subsequent login. This service never deletes users.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	OpenID       string    `gorm:"column:open_id;size:64;uniqueIndex" json:"open_id"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email;size:320" json:"email"`
	LoginMethod  string    `gorm:"column:login_method;size:64" json:"login_method"`
	Role         UserRole  `gorm:"column:role;size:16;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
	LastSignedIn time.Time `gorm:"column:last_signed_in" json:"last_signed_in"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
