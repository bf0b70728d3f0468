// Package store is the durable per-session key-value store. It is the only
// state that survives the full-page redirect to the payment gateway and
// back; everything else is reconstructed fresh on the next visit.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edumath-pro/internal/model"
)

// Well-known keys. The two handoff flags are written by the payment return
// pages and consumed exactly once on the next session resolution.
const (
	KeyPaymentCompleted   = "paymentCompleted"
	KeySubscriptionActive = "subscriptionActive"
	KeyCurrentUser        = "currentUser"
	KeySelectedPlan       = "selectedPlan"
)

type Store interface {
	// Put persists value under (sessionID, key), replacing any previous value.
	Put(ctx context.Context, sessionID, key, value string) error
	// Get returns the stored value, reporting absence via the bool.
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	// Remove deletes a key. Removing an absent key is not an error.
	Remove(ctx context.Context, sessionID, key string) error
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Put(ctx context.Context, sessionID, key, value string) error {
	entry := model.StoreEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&entry).Error
}

func (s *gormStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	var entry model.StoreEntry
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return entry.Value, true, nil
}

func (s *gormStore) Remove(ctx context.Context, sessionID, key string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		Delete(&model.StoreEntry{}).Error
}
