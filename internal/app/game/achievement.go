package game

import (
	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// evaluateAchievements scans the full catalog against the user's current
// metrics and unlocks everything newly satisfied, granting each unlock's XP
// reward. A single pass can unlock several achievements. Already-unlocked
// entries are skipped, and the (user, achievement) unique index keeps
// unlocks exactly-once even under re-evaluation. Must run inside the
// caller's transaction — it is invoked after quest completions, pet hatches
// and boss defeats.
func evaluateAchievements(tx *sqlite.DB, clock domain.Clock, userID string) ([]domain.Achievement, error) {
	user, err := tx.GetUser(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := tx.ListAchievements()
	if err != nil {
		return nil, err
	}
	unlocked, err := tx.UnlockedAchievementIDs(userID)
	if err != nil {
		return nil, err
	}

	// Derived counters, computed on demand.
	questsCompleted, err := tx.CountCompletedQuests(userID)
	if err != nil {
		return nil, err
	}
	petsHatched, err := tx.CountHatchedPets(userID)
	if err != nil {
		return nil, err
	}
	bossesDefeated, err := tx.CountDefeatedBosses(userID)
	if err != nil {
		return nil, err
	}

	var newlyUnlocked []domain.Achievement
	for _, a := range catalog {
		if unlocked[a.ID] {
			continue
		}

		var metric int
		switch a.Type {
		case domain.AchStreak:
			metric = user.Streak
		case domain.AchXP:
			metric = user.TotalXP
		case domain.AchQuests:
			metric = questsCompleted
		case domain.AchPets:
			metric = petsHatched
		case domain.AchBoss:
			metric = bossesDefeated
		default:
			continue
		}
		if metric < a.Requirement {
			continue
		}

		isNew, err := tx.InsertUserAchievement(uuid.NewString(), userID, a.ID, clock.Now())
		if err != nil {
			return nil, err
		}
		if !isNew {
			continue
		}

		if _, err := grantXP(tx, userID, a.XPReward, "achievement"); err != nil {
			return nil, err
		}
		metrics.AchievementsUnlocked.Inc()
		newlyUnlocked = append(newlyUnlocked, a)
	}

	return newlyUnlocked, nil
}

// Achievements returns the full catalog.
func (s *Service) Achievements() ([]domain.Achievement, error) {
	return s.db.ListAchievements()
}

// UserAchievements returns a user's unlocks with timestamps, newest first.
func (s *Service) UserAchievements(userID string) ([]domain.UserAchievement, error) {
	return s.db.ListUserAchievements(userID)
}
