package model

import (
	"time"
)

// Verification outcomes recorded on a VerifyAccount row
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// VerifyAccount is the audit record for a landlord proof-of-ownership
// review. The authoritative account state lives on users.account_type;
// this row keeps the review history and any rejection message.
type VerifyAccount struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	ProofID   string    `json:"proof_id" gorm:"type:varchar(255)"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:pending"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"users,omitempty" gorm:"foreignKey:UserID"`
}
