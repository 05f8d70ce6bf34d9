package store

import (
	"errors"
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) GraceDays(dreamID uuid.UUID) ([]models.GraceDay, error) {
	var days []models.GraceDay
	err := s.db.Where("dream_id = ?", dreamID).Find(&days).Error
	return days, err
}

// GraceDayForDate returns the grace day covering a date, or nil.
func (s *Store) GraceDayForDate(dreamID uuid.UUID, date string) (*models.GraceDay, error) {
	var day models.GraceDay
	err := s.db.Where("dream_id = ? AND used_for_date = ?", dreamID, date).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

// CountGraceDaysSince counts grace days by creation time, which is what the
// rolling quota runs on — not the dates they cover.
func (s *Store) CountGraceDaysSince(dreamID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.GraceDay{}).
		Where("dream_id = ? AND created_at >= ?", dreamID, since).
		Count(&count).Error
	return count, err
}

func (s *Store) CreateGraceDay(day *models.GraceDay) error {
	return s.db.Create(day).Error
}

// PersonalBest returns the stored best, or nil when never set.
func (s *Store) PersonalBest(dreamID uuid.UUID) (*models.PersonalBest, error) {
	var best models.PersonalBest
	err := s.db.First(&best, "dream_id = ?", dreamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &best, nil
}

func (s *Store) SavePersonalBest(best *models.PersonalBest) error {
	return s.db.Save(best).Error
}
