package store

import (
	"errors"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckIns returns the dream's check-ins ordered by date ascending.
func (s *Store) CheckIns(dreamID uuid.UUID) ([]models.DailyCheckIn, error) {
	var checkins []models.DailyCheckIn
	err := s.db.Where("dream_id = ?", dreamID).Order("date ASC").Find(&checkins).Error
	return checkins, err
}

// CheckInByDate returns the check-in for a calendar day, or nil.
func (s *Store) CheckInByDate(dreamID uuid.UUID, date string) (*models.DailyCheckIn, error) {
	var checkin models.DailyCheckIn
	err := s.db.Where("dream_id = ? AND date = ?", dreamID, date).First(&checkin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkin, nil
}

func (s *Store) SaveCheckIn(checkin *models.DailyCheckIn) error {
	return s.db.Save(checkin).Error
}

func (s *Store) CountCheckIns(dreamID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.DailyCheckIn{}).Where("dream_id = ?", dreamID).Count(&count).Error
	return count, err
}

func (s *Store) LegacyCheckIns() ([]models.LegacyCheckIn, error) {
	var checkins []models.LegacyCheckIn
	err := s.db.Order("created_at DESC").Find(&checkins).Error
	return checkins, err
}

func (s *Store) CreateLegacyCheckIn(checkin *models.LegacyCheckIn) error {
	return s.db.Create(checkin).Error
}
