package model

import (
	"time"
)

// Post represents a rental property listing created by a landlord.
// Its displayed lifecycle status is always derived from the associated
// requests at read time and never stored.
type Post struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string    `json:"user_id" gorm:"type:uuid;index;not null"`
	Title         string    `json:"title" gorm:"type:varchar(200)"`
	Description   string    `json:"description" gorm:"type:text"`
	Image         string    `json:"image" gorm:"type:varchar(255)"`
	Beds          string    `json:"beds" gorm:"type:varchar(50)"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`

	User     *User     `json:"users,omitempty" gorm:"foreignKey:UserID"`
	Requests []Request `json:"requests" gorm:"foreignKey:PostID"`
}
