package model

import "time"

// Payment attempt states.
const (
	AttemptInitiated = "INITIATED"
	AttemptCompleted = "COMPLETED"
	AttemptCancelled = "CANCELLED"
)

// PaymentAttempt records one checkout handoff to the payment gateway.
// MPaymentID is the unique reference sent as m_payment_id; the gateway
// echoes it back on the notify callback.
type PaymentAttempt struct {
	MPaymentID string `gorm:"primaryKey;size:64;not null"`
	SessionID  string `gorm:"size:64;index;not null"`
	Email      string `gorm:"size:128;not null"`
	PlanType   string `gorm:"size:32;not null"`
	Amount     int32  `gorm:"not null"`
	Status     string `gorm:"size:32;index;not null"` // INITIATED, COMPLETED, CANCELLED
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StoreEntry is one durable key-value row of the session store, scoped per
// browser session. It is what survives the full-page redirect to the
// payment gateway and back.
type StoreEntry struct {
	SessionID string `gorm:"primaryKey;size:64;not null"`
	Key       string `gorm:"primaryKey;size:64;not null"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
