package store

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
)

func (s *Store) WeeklySummaries(dreamID uuid.UUID) ([]models.WeeklySummary, error) {
	var summaries []models.WeeklySummary
	err := s.db.Where("dream_id = ?", dreamID).Order("week_number ASC").Find(&summaries).Error
	return summaries, err
}

func (s *Store) SaveWeeklySummary(summary *models.WeeklySummary) error {
	return s.db.Save(summary).Error
}
