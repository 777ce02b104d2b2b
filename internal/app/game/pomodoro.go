package game

import (
	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// Pomodoro session constants.
const (
	PomodoroMinutes = 25
	PomodoroXP      = 25
)

// PomodoroResult is the outcome of a recorded focus session.
type PomodoroResult struct {
	User     domain.User
	XPGained int
}

// CompletePomodoro logs a finished focus session: appends the session row,
// grants a flat 25 XP, touches the streak, and bumps the daily rollup.
// Achievements are deliberately not evaluated here — no achievement tracks
// sessions directly, and XP milestones settle on the next quest, hatch or
// boss event.
func (s *Service) CompletePomodoro(userID string) (PomodoroResult, error) {
	var result PomodoroResult

	err := s.db.WithTx(func(tx *sqlite.DB) error {
		if _, err := tx.GetUser(userID); err != nil {
			return err
		}

		session := domain.StudySession{
			ID:              uuid.NewString(),
			UserID:          userID,
			DurationMinutes: PomodoroMinutes,
			SessionType:     "pomodoro",
			CreatedAt:       s.clock.Now(),
		}
		if err := tx.InsertStudySession(session); err != nil {
			return err
		}

		if _, err := grantXP(tx, userID, PomodoroXP, "pomodoro"); err != nil {
			return err
		}
		if _, err := touchStreak(tx, s.clock, userID); err != nil {
			return err
		}
		if err := recordDaily(tx, s.clock, userID, 0, PomodoroXP, 1); err != nil {
			return err
		}

		user, err := tx.GetUser(userID)
		if err != nil {
			return err
		}
		result = PomodoroResult{User: user, XPGained: PomodoroXP}
		return nil
	})
	if err != nil {
		return PomodoroResult{}, err
	}

	metrics.PomodorosCompleted.Inc()
	return result, nil
}
