package model

import (
	"time"
)

// Account types with admin-managed transitions. Anything else stored in
// account_type is passed through untouched.
const (
	AccountTypeLandlord           = "landlord"
	AccountTypeLandlordUnverified = "landlord_unverified"
)

// User represents a platform account (student or landlord) stored in the database.
// Students are marked by a non-nil StudentID rather than an account type.
type User struct {
	ID               string     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username         string     `json:"username" gorm:"type:varchar(100)"`
	Firstname        string     `json:"firstname" gorm:"type:varchar(100)"`
	Lastname         string     `json:"lastname" gorm:"type:varchar(100)"`
	Email            string     `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Contact          *int64     `json:"contact,omitempty"`
	School           string     `json:"school" gorm:"type:varchar(150)"`
	Avatar           string     `json:"avatar" gorm:"type:varchar(255)"`
	AccountType      string     `json:"account_type" gorm:"type:varchar(50);index"`
	StudentID        *int64     `json:"student_id,omitempty" gorm:"index"`
	LandlordProofID  *string    `json:"landlord_proof_id,omitempty" gorm:"type:varchar(255)"`
	Online           bool       `json:"online" gorm:"default:false"`
	SuspendedUntil   *time.Time `json:"suspended_until,omitempty"`
	SuspendedForever bool       `json:"suspended_forever" gorm:"default:false"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
