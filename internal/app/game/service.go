// Package game implements the Study Quest reward engine: the rules that
// turn study actions (quest completions, pomodoros, boss attacks, purchases,
// pet care) into consistent XP, level, streak, achievement, inventory and
// pet state.
package game

import (
	"math/rand"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// Service is the reward engine. One instance serves all requests; every
// operation re-reads state from storage, and multi-step chains run inside a
// single transaction.
type Service struct {
	db    *sqlite.DB
	clock domain.Clock

	// randInt picks a uniform int in [0, n). Swapped out in tests.
	randInt func(n int) int
}

// NewService creates the reward engine on top of the given store.
func NewService(db *sqlite.DB, clock domain.Clock) *Service {
	return &Service{db: db, clock: clock, randInt: rand.Intn}
}

// grantXP credits amount to both the spendable balance and lifetime total,
// then re-derives the cached level from the new total so it never drifts.
// Must run inside the caller's transaction.
func grantXP(tx *sqlite.DB, userID string, amount int, source string) (domain.User, error) {
	if err := tx.AddUserXP(userID, amount); err != nil {
		return domain.User{}, err
	}
	user, err := tx.GetUser(userID)
	if err != nil {
		return domain.User{}, err
	}
	level := LevelOf(user.TotalXP)
	if level.Level != user.Level {
		if err := tx.SetUserLevel(userID, level.Level); err != nil {
			return domain.User{}, err
		}
		user.Level = level.Level
	}
	metrics.XPGranted.WithLabelValues(source).Add(float64(amount))
	return user, nil
}
