package sqlite

import (
	"database/sql"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

const battleColumns = `id, user_id, boss_name, boss_hp, current_hp, month, is_defeated, rewards`

func scanBattle(row rowScanner) (domain.BossBattle, error) {
	var b domain.BossBattle
	err := row.Scan(&b.ID, &b.UserID, &b.BossName, &b.BossHP, &b.CurrentHP,
		&b.Month, &b.IsDefeated, &b.Rewards)
	if err == sql.ErrNoRows {
		return b, domain.ErrNoActiveBattle
	}
	return b, err
}

// InsertBattle creates the monthly encounter. The (user_id, month) unique
// index enforces at most one battle per bucket.
func (d *DB) InsertBattle(b domain.BossBattle) error {
	_, err := d.q.Exec(
		`INSERT INTO boss_battles (id, user_id, boss_name, boss_hp, current_hp, month, is_defeated, rewards)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.BossName, b.BossHP, b.CurrentHP, b.Month, b.IsDefeated, b.Rewards,
	)
	return err
}

// GetBattle retrieves the battle for a (user, month) bucket regardless of
// defeat state.
func (d *DB) GetBattle(userID, month string) (domain.BossBattle, error) {
	row := d.q.QueryRow(
		`SELECT `+battleColumns+` FROM boss_battles WHERE user_id = ? AND month = ?`,
		userID, month,
	)
	return scanBattle(row)
}

// GetActiveBattle retrieves the undefeated battle for a (user, month)
// bucket. Defeated battles are excluded so further attacks miss by
// construction.
func (d *DB) GetActiveBattle(userID, month string) (domain.BossBattle, error) {
	row := d.q.QueryRow(
		`SELECT `+battleColumns+` FROM boss_battles WHERE user_id = ? AND month = ? AND is_defeated = 0`,
		userID, month,
	)
	return scanBattle(row)
}

// UpdateBattleHP stores the post-attack state.
func (d *DB) UpdateBattleHP(id string, currentHP int, defeated bool, rewards int) error {
	_, err := d.q.Exec(
		`UPDATE boss_battles SET current_hp = ?, is_defeated = ?, rewards = ? WHERE id = ?`,
		currentHP, defeated, rewards, id,
	)
	return err
}

// ListBattles returns all of a user's battles, most recent month first.
func (d *DB) ListBattles(userID string) ([]domain.BossBattle, error) {
	rows, err := d.q.Query(
		`SELECT `+battleColumns+` FROM boss_battles WHERE user_id = ? ORDER BY month DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var battles []domain.BossBattle
	for rows.Next() {
		b, err := scanBattle(rows)
		if err != nil {
			return nil, err
		}
		battles = append(battles, b)
	}
	return battles, rows.Err()
}

// CountDefeatedBosses returns how many bosses the user has defeated.
func (d *DB) CountDefeatedBosses(userID string) (int, error) {
	var count int
	err := d.q.QueryRow(
		`SELECT COUNT(*) FROM boss_battles WHERE user_id = ? AND is_defeated = 1`, userID,
	).Scan(&count)
	return count, err
}
