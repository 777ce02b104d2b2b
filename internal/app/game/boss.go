package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// Boss encounter constants. Every monthly boss spawns with the same HP pool
// and pays the same bounty on defeat.
const (
	BossBaseHP   = 500
	BossRewardXP = 500
)

// bossNames is the fixed pool a new encounter draws from.
var bossNames = []string{
	"Archfiend of First Principles",
	"Statistics Dragon",
	"Methodology Giant",
	"Guardian of General Psychology",
	"Spirit of Developmental Psychology",
	"Phantom of Social Psychology",
}

// CurrentBoss returns this month's encounter, lazily creating it on first
// access for the (user, month) bucket.
func (s *Service) CurrentBoss(userID string) (domain.BossBattle, error) {
	month := domain.MonthBucket(s.clock.Now())

	var battle domain.BossBattle
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		var err error
		battle, err = tx.GetBattle(userID, month)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNoActiveBattle) {
			return err
		}

		battle = domain.BossBattle{
			ID:        uuid.NewString(),
			UserID:    userID,
			BossName:  bossNames[s.randInt(len(bossNames))],
			BossHP:    BossBaseHP,
			CurrentHP: BossBaseHP,
			Month:     month,
		}
		return tx.InsertBattle(battle)
	})
	if err != nil {
		return domain.BossBattle{}, err
	}
	return battle, nil
}

// AttackResult is the outcome of one attack.
type AttackResult struct {
	Battle  domain.BossBattle
	Rewards int // bounty granted this call; non-zero only at the defeat transition
}

// Attack applies damage to the current month's undefeated boss. HP floors
// at zero; crossing zero marks the battle defeated and grants the bounty to
// the user's XP exactly once, then evaluates achievements. Attacks against
// an already-defeated battle miss the lookup and fail as not-found.
func (s *Service) Attack(userID string, damage int) (AttackResult, error) {
	if damage <= 0 {
		damage = 10
	}
	month := domain.MonthBucket(s.clock.Now())

	var result AttackResult
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		battle, err := tx.GetActiveBattle(userID, month)
		if err != nil {
			return err
		}

		newHP := battle.CurrentHP - damage
		if newHP < 0 {
			newHP = 0
		}
		defeated := newHP == 0
		rewards := 0
		if defeated {
			rewards = BossRewardXP
		}

		if err := tx.UpdateBattleHP(battle.ID, newHP, defeated, rewards); err != nil {
			return err
		}

		if defeated {
			if _, err := grantXP(tx, userID, rewards, "boss"); err != nil {
				return err
			}
			if _, err := evaluateAchievements(tx, s.clock, userID); err != nil {
				return err
			}
			metrics.BossesDefeated.Inc()
		}

		battle.CurrentHP = newHP
		battle.IsDefeated = defeated
		battle.Rewards = rewards
		result = AttackResult{Battle: battle, Rewards: rewards}
		return nil
	})
	if err != nil {
		return AttackResult{}, err
	}
	return result, nil
}

// BossHistory returns all of the user's encounters, most recent month first.
func (s *Service) BossHistory(userID string) ([]domain.BossBattle, error) {
	return s.db.ListBattles(userID)
}
