package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSubmitted PaymentStatus = "submitted"
	PaymentApproved  PaymentStatus = "approved"
)

// CanTransitionTo reports whether the payment lifecycle allows moving from
// the current status to target. approved is terminal.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return target == PaymentSubmitted
	case PaymentSubmitted:
		return target == PaymentApproved || target == PaymentPending
	default:
		return false
	}
}

type Account struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	PasswordHash string        `json:"-" gorm:"not null;size:255"`
	Phone        string        `json:"phone" gorm:"size:20"`
	Role         UserRole      `json:"role" gorm:"default:student;index" validate:"omitempty,oneof=student admin"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"default:pending;index" validate:"omitempty,oneof=pending submitted approved"`
	TransactionID *string      `json:"transaction_id" gorm:"size:100"`

	JoinedAt  time.Time `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "physics_users"
}

// IsApproved reports whether the account may read gated content
// (resources, question bank, quizzes, AI solver).
func (a *Account) IsApproved() bool {
	return a.PaymentStatus == PaymentApproved
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
