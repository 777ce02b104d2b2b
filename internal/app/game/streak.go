package game

import (
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// touchStreak records a study-counting event against the user's streak.
// Same civil day: streak unchanged. Exactly one day later: streak + 1.
// Anything else (gap, or clock skew backwards): reset to 1. The last study
// date is always rewritten to today, which makes same-day re-entry
// idempotent. Must run inside the caller's transaction.
func touchStreak(tx *sqlite.DB, clock domain.Clock, userID string) (domain.User, error) {
	user, err := tx.GetUser(userID)
	if err != nil {
		return domain.User{}, err
	}

	today := domain.CivilDate(clock.Now())
	streak := user.Streak

	if user.LastStudyDate == "" {
		streak = 1
	} else {
		switch domain.DayDiff(user.LastStudyDate, today) {
		case 0:
			// Same day — already counted
		case 1:
			streak++
		default:
			streak = 1
		}
	}

	longest := user.LongestStreak
	if streak > longest {
		longest = streak
	}

	if err := tx.SetUserStreak(userID, streak, longest, today); err != nil {
		return domain.User{}, err
	}

	user.Streak = streak
	user.LongestStreak = longest
	user.LastStudyDate = today
	return user, nil
}
