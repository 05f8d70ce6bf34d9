package store

import (
	"errors"
	"strings"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) Teams() ([]models.DreamTeam, error) {
	var teams []models.DreamTeam
	err := s.db.Preload("Members").Order("created_at DESC").Find(&teams).Error
	return teams, err
}

func (s *Store) Team(id uuid.UUID) (*models.DreamTeam, error) {
	var team models.DreamTeam
	err := s.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// TeamByCode looks a team up by its join code, case-insensitively.
func (s *Store) TeamByCode(code string) (*models.DreamTeam, error) {
	var team models.DreamTeam
	err := s.db.Preload("Members").First(&team, "code = ?", strings.ToUpper(strings.TrimSpace(code))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (s *Store) CreateTeam(team *models.DreamTeam) error {
	return s.db.Create(team).Error
}

func (s *Store) SaveTeam(team *models.DreamTeam) error {
	return s.db.Save(team).Error
}

func (s *Store) AddTeamMember(member *models.TeamMember) error {
	return s.db.Create(member).Error
}

// TeamSignals returns the full append-only signal log, newest first.
func (s *Store) TeamSignals(teamID uuid.UUID) ([]models.TeamSignal, error) {
	var signals []models.TeamSignal
	err := s.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&signals).Error
	return signals, err
}

// SignalsForDate collapses the day's log to one signal per member — the
// latest write wins, since the log itself is not deduplicated.
func (s *Store) SignalsForDate(teamID uuid.UUID, date string) ([]models.TeamSignal, error) {
	signals, err := s.TeamSignals(teamID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool)
	latest := make([]models.TeamSignal, 0)
	for _, sig := range signals {
		if sig.Date != date || seen[sig.MemberID] {
			continue
		}
		seen[sig.MemberID] = true
		latest = append(latest, sig)
	}
	return latest, nil
}

func (s *Store) CreateTeamSignal(signal *models.TeamSignal) error {
	return s.db.Create(signal).Error
}
