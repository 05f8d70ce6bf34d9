package store

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// AppendEvent writes one observability log entry. Fire and forget: the
// engine never reads these back for decisions.
func (s *Store) AppendEvent(event *models.EventLog) error {
	return s.db.Create(event).Error
}

func (s *Store) Events(limit int) ([]models.EventLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var events []models.EventLog
	err := s.db.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
