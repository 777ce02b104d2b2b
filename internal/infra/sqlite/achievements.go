package sqlite

import (
	"time"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

const achievementColumns = `id, name, description, icon, requirement, type, xp_reward`

func scanAchievement(row rowScanner) (domain.Achievement, error) {
	var a domain.Achievement
	var typ string
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Requirement, &typ, &a.XPReward)
	if err != nil {
		return a, err
	}
	a.Type = domain.AchievementType(typ)
	return a, nil
}

// ListAchievements returns the full catalog ordered by type then requirement.
func (d *DB) ListAchievements() ([]domain.Achievement, error) {
	rows, err := d.q.Query(
		`SELECT ` + achievementColumns + ` FROM achievements ORDER BY type, requirement`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// UnlockedAchievementIDs returns the set of achievement IDs the user holds.
func (d *DB) UnlockedAchievementIDs(userID string) (map[string]bool, error) {
	rows, err := d.q.Query(
		`SELECT achievement_id FROM user_achievements WHERE user_id = ?`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocked := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		unlocked[id] = true
	}
	return unlocked, rows.Err()
}

// InsertUserAchievement records an unlock. INSERT OR IGNORE plus the
// (user_id, achievement_id) unique index makes unlocking idempotent; the
// return value reports whether this call created the row.
func (d *DB) InsertUserAchievement(id, userID, achievementID string, at time.Time) (bool, error) {
	res, err := d.q.Exec(
		`INSERT OR IGNORE INTO user_achievements (id, user_id, achievement_id, unlocked_at)
		 VALUES (?, ?, ?, ?)`,
		id, userID, achievementID, at.Unix(),
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ListUserAchievements returns a user's unlocks joined with the catalog,
// newest first.
func (d *DB) ListUserAchievements(userID string) ([]domain.UserAchievement, error) {
	rows, err := d.q.Query(
		`SELECT ua.id, ua.user_id, ua.achievement_id, ua.unlocked_at,
		        a.id, a.name, a.description, a.icon, a.requirement, a.type, a.xp_reward
		 FROM user_achievements ua
		 JOIN achievements a ON ua.achievement_id = a.id
		 WHERE ua.user_id = ?
		 ORDER BY ua.unlocked_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []domain.UserAchievement
	for rows.Next() {
		var ua domain.UserAchievement
		var unlockedAt int64
		var typ string
		err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &unlockedAt,
			&ua.Achievement.ID, &ua.Achievement.Name, &ua.Achievement.Description,
			&ua.Achievement.Icon, &ua.Achievement.Requirement, &typ, &ua.Achievement.XPReward)
		if err != nil {
			return nil, err
		}
		ua.Achievement.Type = domain.AchievementType(typ)
		ua.UnlockedAt = time.Unix(unlockedAt, 0).In(domain.StudyZone)
		unlocks = append(unlocks, ua)
	}
	return unlocks, rows.Err()
}

// CountUserAchievements returns how many achievements the user has unlocked.
func (d *DB) CountUserAchievements(userID string) (int, error) {
	var count int
	err := d.q.QueryRow(
		`SELECT COUNT(*) FROM user_achievements WHERE user_id = ?`, userID,
	).Scan(&count)
	return count, err
}
