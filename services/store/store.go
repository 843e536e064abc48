package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pushnotify/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrStorage              = errors.New("storage failure")
)

// Store persists notifications per recipient. Rows are append-only except for
// the one-way is_read flip.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// Append durably records a notification before any delivery attempt is made.
// The record is either fully visible afterwards or not created at all.
func (s *Store) Append(ctx context.Context, userID uint, title, body, category string) (*models.Notification, error) {
	if category == "" {
		category = models.CategoryInfo
	}
	n := models.Notification{
		UserID:   userID,
		Title:    title,
		Body:     body,
		Category: category,
	}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &n, nil
}

// ListForUser returns all notifications for a user, newest first. Ties on
// created_at fall back to id descending so insertion order is preserved.
func (s *Store) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var list []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return list, nil
}

// ListUnread returns the unread subset in the same newest-first order.
func (s *Store) ListUnread(ctx context.Context, userID uint) ([]models.Notification, error) {
	var list []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return list, nil
}

// MarkRead flips is_read to true. Marking an already-read notification again
// is a no-op, not an error.
func (s *Store) MarkRead(ctx context.Context, id uint) error {
	var n models.Notification
	if err := s.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if n.IsRead {
		return nil
	}
	err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// SetPresence records the last-known online flag and last-seen timestamp on
// the user row. Audit only; dispatch decisions come from the presence
// registry, never from here.
func (s *Store) SetPresence(ctx context.Context, userID uint, online bool) error {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"is_online": online, "last_seen": time.Now()}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
