package sqlite

import (
	"database/sql"
	"time"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

const userColumns = `id, username, level, xp, total_xp, streak, longest_streak, last_study_date, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var createdAt int64
	err := row.Scan(&u.ID, &u.Username, &u.Level, &u.XP, &u.TotalXP,
		&u.Streak, &u.LongestStreak, &u.LastStudyDate, &createdAt)
	if err == sql.ErrNoRows {
		return u, domain.ErrUserNotFound
	}
	if err != nil {
		return u, err
	}
	u.CreatedAt = time.Unix(createdAt, 0).In(domain.StudyZone)
	return u, nil
}

// InsertUser creates a new user row at level 1 with zero XP and streak.
func (d *DB) InsertUser(u domain.User) error {
	_, err := d.q.Exec(
		`INSERT INTO users (id, username, level, xp, total_xp, streak, longest_streak, last_study_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Level, u.XP, u.TotalXP, u.Streak, u.LongestStreak,
		u.LastStudyDate, u.CreatedAt.Unix(),
	)
	return err
}

// GetUser retrieves a user by ID.
func (d *DB) GetUser(id string) (domain.User, error) {
	row := d.q.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByUsername retrieves a user by unique username.
func (d *DB) GetUserByUsername(username string) (domain.User, error) {
	row := d.q.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// AddUserXP atomically grants XP to both the spendable balance and the
// lifetime total.
func (d *DB) AddUserXP(id string, amount int) error {
	res, err := d.q.Exec(
		`UPDATE users SET xp = xp + ?, total_xp = total_xp + ? WHERE id = ?`,
		amount, amount, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrUserNotFound)
}

// SpendUserXP atomically debits the spendable balance. The guard in the
// WHERE clause keeps the balance non-negative under concurrent purchases.
func (d *DB) SpendUserXP(id string, amount int) error {
	res, err := d.q.Exec(
		`UPDATE users SET xp = xp - ? WHERE id = ? AND xp >= ?`,
		amount, id, amount,
	)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrInsufficientXP)
}

// SetUserLevel stores the cached level derivation.
func (d *DB) SetUserLevel(id string, level int) error {
	_, err := d.q.Exec(`UPDATE users SET level = ? WHERE id = ?`, level, id)
	return err
}

// SetUserStreak persists streak state and the last study date.
func (d *DB) SetUserStreak(id string, streak, longest int, lastStudyDate string) error {
	_, err := d.q.Exec(
		`UPDATE users SET streak = ?, longest_streak = ?, last_study_date = ? WHERE id = ?`,
		streak, longest, lastStudyDate, id,
	)
	return err
}

// requireRow converts a zero-rows-affected result into notFound.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
