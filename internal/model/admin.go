package model

import (
	"time"
)

// Admin represents a dashboard administrator. Admins live in their own
// table, separate from platform accounts.
type Admin struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Firstname string    `json:"firstname" gorm:"type:varchar(100)"`
	Lastname  string    `json:"lastname" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Role      string    `json:"role" gorm:"type:varchar(50)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
