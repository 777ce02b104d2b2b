package game

import (
	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// recordDaily accumulates deltas into the user's rollup for today. The
// upsert adds to existing counters; deltas are never negative here. Must run
// inside the caller's transaction.
func recordDaily(tx *sqlite.DB, clock domain.Clock, userID string, quests, xp, pomodoros int) error {
	date := domain.CivilDate(clock.Now())
	return tx.UpsertDailyStat(uuid.NewString(), userID, date, quests, xp, pomodoros)
}
