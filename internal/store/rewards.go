package store

import (
	"errors"
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) Badges(dreamID uuid.UUID) ([]models.Badge, error) {
	var badges []models.Badge
	err := s.db.Where("dream_id = ?", dreamID).Order("earned_at ASC").Find(&badges).Error
	return badges, err
}

func (s *Store) HasBadge(dreamID uuid.UUID, badgeType string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Badge{}).
		Where("dream_id = ? AND type = ?", dreamID, badgeType).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateBadge(badge *models.Badge) error {
	return s.db.Create(badge).Error
}

func (s *Store) XPEvents(dreamID uuid.UUID) ([]models.XPEvent, error) {
	var events []models.XPEvent
	err := s.db.Where("dream_id = ?", dreamID).Order("created_at ASC").Find(&events).Error
	return events, err
}

// DreamXP returns the running total row; a dream with no XP yet reads as a
// zero total rather than a missing record.
func (s *Store) DreamXP(dreamID uuid.UUID) (*models.DreamXP, error) {
	var xp models.DreamXP
	err := s.db.First(&xp, "dream_id = ?", dreamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DreamXP{DreamID: dreamID}, nil
		}
		return nil, err
	}
	return &xp, nil
}

// AppendXP writes the ledger entry and bumps the running total in one
// transaction, keeping total == sum(history) visible at every point.
func (s *Store) AppendXP(event *models.XPEvent) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		var xp models.DreamXP
		err := tx.First(&xp, "dream_id = ?", event.DreamID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xp = models.DreamXP{DreamID: event.DreamID}
		} else if err != nil {
			return err
		}
		xp.Total += event.Amount
		xp.UpdatedAt = time.Now()
		return tx.Save(&xp).Error
	})
}
