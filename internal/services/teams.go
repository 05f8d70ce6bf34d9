package services

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamCodeTaken = errors.New("could not allocate a unique team code")
)

// Join codes skip 0/O and 1/I so they survive being read aloud.
const teamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const teamCodeLength = 6

func generateTeamCode() (string, error) {
	code := make([]byte, teamCodeLength)
	max := big.NewInt(int64(len(teamCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = teamCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

var memberEmojis = []string{"🌱", "🔥", "⭐", "🌊", "🌙", "⚡", "🌸", "🦅"}

func memberEmoji(name string) string {
	var hash int32
	for _, c := range name {
		hash = hash*31 + int32(c)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return memberEmojis[h%int64(len(memberEmojis))]
}

// CreateTeam allocates a join code, creates the team and registers the
// creator as its first member.
func (c *Coach) CreateTeam(req models.CreateTeamRequest) (*models.DreamTeam, error) {
	var code string
	for attempt := 0; ; attempt++ {
		generated, err := generateTeamCode()
		if err != nil {
			return nil, err
		}
		existing, err := c.store.TeamByCode(generated)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			code = generated
			break
		}
		if attempt >= 4 {
			return nil, ErrTeamCodeTaken
		}
	}

	sharing := req.SharingLevel
	if sharing == "" {
		sharing = models.SharingStreakOnly
	}
	dreamTitle := ""
	if req.DreamID != nil {
		dream, err := c.store.Dream(*req.DreamID)
		if err != nil {
			return nil, err
		}
		if dream != nil {
			dreamTitle = dream.Title
		}
	}

	me := models.TeamMember{
		ID:           uuid.New(),
		Name:         req.MyName,
		Emoji:        memberEmoji(req.MyName),
		DreamTitle:   dreamTitle,
		IsMe:         true,
		SharingLevel: sharing,
		JoinedAt:     c.now(),
	}
	team := &models.DreamTeam{
		Code:         code,
		Name:         req.Name,
		MyDreamID:    req.DreamID,
		MyMemberID:   me.ID,
		SharingLevel: sharing,
		Members:      []models.TeamMember{me},
	}
	if err := c.store.CreateTeam(team); err != nil {
		return nil, err
	}
	return team, nil
}

// JoinTeam adds a member to the team behind a join code.
func (c *Coach) JoinTeam(req models.JoinTeamRequest) (*models.DreamTeam, error) {
	team, err := c.store.TeamByCode(req.Code)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	sharing := req.SharingLevel
	if sharing == "" {
		sharing = models.SharingStreakOnly
	}
	member := &models.TeamMember{
		TeamID:       team.ID,
		Name:         req.MyName,
		Emoji:        memberEmoji(req.MyName),
		DreamTitle:   req.DreamTitle,
		SharingLevel: sharing,
		JoinedAt:     c.now(),
	}
	if err := c.store.AddTeamMember(member); err != nil {
		return nil, err
	}
	team.Members = append(team.Members, *member)
	c.LogEvent(models.EventTeamJoined, team.MyDreamID, map[string]any{
		"team_id": team.ID, "member": req.MyName,
	})
	return team, nil
}

// SendSignal appends the member's daily broadcast. The log is append-only;
// a second signal the same day simply supersedes the first for readers.
func (c *Coach) SendSignal(team *models.DreamTeam, req models.SignalRequest) (*models.TeamSignal, error) {
	today := Today(c.now())
	streak := 0
	isRestart := false
	if team.MyDreamID != nil {
		checkins, err := c.store.CheckIns(*team.MyDreamID)
		if err != nil {
			return nil, err
		}
		graceDays, err := c.store.GraceDays(*team.MyDreamID)
		if err != nil {
			return nil, err
		}
		streak = StreakWithGrace(checkins, graceDays, today)
		isRestart = req.DidSomething && DaysSinceLastCheckIn(checkins, today) >= 2
	}

	action := ""
	if team.SharingLevel == models.SharingTinyAction || team.SharingLevel == models.SharingWeeklySummary {
		action = req.ActionShared
	}
	signal := &models.TeamSignal{
		TeamID:       team.ID,
		MemberID:     team.MyMemberID,
		Date:         today,
		DidSomething: req.DidSomething,
		ActionShared: action,
		Streak:       streak,
		IsRestart:    isRestart,
	}
	if err := c.store.CreateTeamSignal(signal); err != nil {
		return nil, err
	}
	return signal, nil
}

// PingTeam nudges the circle and earns support XP when a dream is attached.
func (c *Coach) PingTeam(team *models.DreamTeam) error {
	c.LogEvent(models.EventTeamPingSent, team.MyDreamID, map[string]any{"team_id": team.ID})
	if team.MyDreamID != nil {
		if _, err := c.AddXP(*team.MyDreamID, models.XPTeamSupport); err != nil {
			return err
		}
	}
	return nil
}
