package sqlite

import (
	"database/sql"
	"time"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

const questColumns = `id, user_id, title, description, xp_reward, category, is_completed, created_at, completed_at`

func scanQuest(row rowScanner) (domain.Quest, error) {
	var q domain.Quest
	var category string
	var createdAt int64
	var completedAt sql.NullInt64
	err := row.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &q.XPReward,
		&category, &q.IsCompleted, &createdAt, &completedAt)
	if err == sql.ErrNoRows {
		return q, domain.ErrQuestNotFound
	}
	if err != nil {
		return q, err
	}
	q.Category = domain.QuestCategory(category)
	q.CreatedAt = time.Unix(createdAt, 0).In(domain.StudyZone)
	if completedAt.Valid {
		t := time.Unix(completedAt.Int64, 0).In(domain.StudyZone)
		q.CompletedAt = &t
	}
	return q, nil
}

// InsertQuest creates a new quest row.
func (d *DB) InsertQuest(q domain.Quest) error {
	_, err := d.q.Exec(
		`INSERT INTO quests (id, user_id, title, description, xp_reward, category, is_completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		q.ID, q.UserID, q.Title, q.Description, q.XPReward, string(q.Category), q.CreatedAt.Unix(),
	)
	return err
}

// GetQuest retrieves a quest by ID.
func (d *DB) GetQuest(id string) (domain.Quest, error) {
	row := d.q.QueryRow(`SELECT `+questColumns+` FROM quests WHERE id = ?`, id)
	return scanQuest(row)
}

// ListQuestsCreatedBetween returns a user's quests created in [from, to),
// oldest first. Bounds are unix seconds of a civil day.
func (d *DB) ListQuestsCreatedBetween(userID string, from, to int64) ([]domain.Quest, error) {
	rows, err := d.q.Query(
		`SELECT `+questColumns+` FROM quests
		 WHERE user_id = ? AND created_at >= ? AND created_at < ?
		 ORDER BY created_at ASC, id ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, rows.Err()
}

// MarkQuestCompleted flips the completion flag exactly once. Returns
// ErrQuestCompleted if the quest was already completed.
func (d *DB) MarkQuestCompleted(id string, at time.Time) error {
	res, err := d.q.Exec(
		`UPDATE quests SET is_completed = 1, completed_at = ? WHERE id = ? AND is_completed = 0`,
		at.Unix(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrQuestCompleted)
}

// CountCompletedQuests returns how many quests the user has completed.
func (d *DB) CountCompletedQuests(userID string) (int, error) {
	var count int
	err := d.q.QueryRow(
		`SELECT COUNT(*) FROM quests WHERE user_id = ? AND is_completed = 1`, userID,
	).Scan(&count)
	return count, err
}
