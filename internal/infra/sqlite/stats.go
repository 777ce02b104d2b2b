package sqlite

import (
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

// UpsertDailyStat adds the deltas to the (user, date) rollup, inserting the
// row with the deltas as initial values when absent. The addition happens in
// SQL so concurrent same-day events cannot lose an update.
func (d *DB) UpsertDailyStat(id, userID, date string, quests, xp, pomodoros int) error {
	_, err := d.q.Exec(
		`INSERT INTO daily_stats (id, user_id, date, quests_completed, xp_earned, pomodoros_completed)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, date) DO UPDATE SET
		   quests_completed    = quests_completed + excluded.quests_completed,
		   xp_earned           = xp_earned + excluded.xp_earned,
		   pomodoros_completed = pomodoros_completed + excluded.pomodoros_completed`,
		id, userID, date, quests, xp, pomodoros,
	)
	return err
}

// ListDailyStats returns up to limit rollup rows for the user, newest first.
func (d *DB) ListDailyStats(userID string, limit int) ([]domain.DailyStat, error) {
	rows, err := d.q.Query(
		`SELECT date, quests_completed, xp_earned, pomodoros_completed
		 FROM daily_stats WHERE user_id = ?
		 ORDER BY date DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.DailyStat
	for rows.Next() {
		var s domain.DailyStat
		if err := rows.Scan(&s.Date, &s.QuestsCompleted, &s.XPEarned, &s.PomodorosCompleted); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// InsertStudySession appends one focus-session log row.
func (d *DB) InsertStudySession(s domain.StudySession) error {
	_, err := d.q.Exec(
		`INSERT INTO study_sessions (id, user_id, duration_minutes, session_type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.DurationMinutes, s.SessionType, s.CreatedAt.Unix(),
	)
	return err
}

// SumStudyMinutes returns the user's lifetime study minutes.
func (d *DB) SumStudyMinutes(userID string) (int, error) {
	var total int
	err := d.q.QueryRow(
		`SELECT COALESCE(SUM(duration_minutes), 0) FROM study_sessions WHERE user_id = ?`,
		userID,
	).Scan(&total)
	return total, err
}

// CountPomodoros returns how many pomodoro sessions the user has logged.
func (d *DB) CountPomodoros(userID string) (int, error) {
	var count int
	err := d.q.QueryRow(
		`SELECT COUNT(*) FROM study_sessions WHERE user_id = ? AND session_type = 'pomodoro'`,
		userID,
	).Scan(&count)
	return count, err
}
