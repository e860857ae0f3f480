package model

import (
	"time"
)

// Request represents one student's rental application against one listing.
// Requested means the student submitted interest; Confirmed means the
// landlord finalized the tenancy.
type Request struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID    string    `json:"post_id" gorm:"type:uuid;index;not null"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	Confirmed bool      `json:"confirmed" gorm:"default:false"`
	Requested bool      `json:"requested" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"users,omitempty" gorm:"foreignKey:UserID"`
	Post *Post `json:"posts,omitempty" gorm:"foreignKey:PostID"`
}
