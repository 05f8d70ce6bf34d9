package store

import (
	"errors"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) Dreams() ([]models.Dream, error) {
	var dreams []models.Dream
	err := s.db.Order("created_at DESC").Find(&dreams).Error
	return dreams, err
}

// Dream returns the dream or nil when it does not exist.
func (s *Store) Dream(id uuid.UUID) (*models.Dream, error) {
	var dream models.Dream
	if err := s.db.First(&dream, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dream, nil
}

func (s *Store) CreateDream(dream *models.Dream) error {
	return s.db.Create(dream).Error
}

func (s *Store) SaveDream(dream *models.Dream) error {
	return s.db.Save(dream).Error
}

func (s *Store) DeleteDream(id uuid.UUID) error {
	return s.db.Delete(&models.Dream{}, "id = ?", id).Error
}
