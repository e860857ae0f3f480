package model

import (
	"time"
)

// ContactSupport represents a feedback/support message submitted by a user
type ContactSupport struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	Subject   string    `json:"subject" gorm:"type:varchar(200)"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"users,omitempty" gorm:"foreignKey:UserID"`
}
