package game

import (
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

// Summary aggregates the user's lifetime counters.
func (s *Service) Summary(userID string) (domain.StatsSummary, error) {
	user, err := s.db.GetUser(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}

	studyMinutes, err := s.db.SumStudyMinutes(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}
	quests, err := s.db.CountCompletedQuests(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}
	pomodoros, err := s.db.CountPomodoros(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}
	bosses, err := s.db.CountDefeatedBosses(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}
	pets, err := s.db.CountHatchedPets(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}
	achievements, err := s.db.CountUserAchievements(userID)
	if err != nil {
		return domain.StatsSummary{}, err
	}

	return domain.StatsSummary{
		TotalStudyTime:       studyMinutes,
		QuestsCompleted:      quests,
		PomodorosCompleted:   pomodoros,
		BossesDefeated:       bosses,
		PetsCollected:        pets,
		AchievementsUnlocked: achievements,
		CurrentStreak:        user.Streak,
		LongestStreak:        user.LongestStreak,
	}, nil
}

// DailyHistory returns the last `days` civil days of rollups in
// chronological order, with zero rows filled in for days without activity.
func (s *Service) DailyHistory(userID string, days int) ([]domain.DailyStat, error) {
	if days <= 0 {
		days = 7
	}

	stored, err := s.db.ListDailyStats(userID, days)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]domain.DailyStat, len(stored))
	for _, st := range stored {
		byDate[st.Date] = st
	}

	today := s.clock.Now()
	history := make([]domain.DailyStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := domain.CivilDate(today.AddDate(0, 0, -i))
		if st, ok := byDate[date]; ok {
			history = append(history, st)
		} else {
			history = append(history, domain.DailyStat{Date: date})
		}
	}
	return history, nil
}
