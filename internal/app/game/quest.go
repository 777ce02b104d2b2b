package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// defaultQuests is the fixed set seeded for each new day.
var defaultQuests = []domain.Quest{
	{Title: "Complete 3 pomodoros", Description: "Focus for 75 minutes", XPReward: 75, Category: domain.CategoryPomodoro},
	{Title: "Review core concepts", Description: "Review for at least 30 minutes", XPReward: 50, Category: domain.CategoryReview},
	{Title: "Practice problem set", Description: "Finish 10 practice problems", XPReward: 60, Category: domain.CategoryPractice},
	{Title: "Read an article", Description: "Read one article on your subject", XPReward: 40, Category: domain.CategoryStudy},
	{Title: "Tidy up notes", Description: "Organize today's study notes", XPReward: 30, Category: domain.CategoryStudy},
}

// DefaultXPReward is applied when a custom quest omits its reward.
const DefaultXPReward = 50

// createDefaultQuests seeds the five default quests timestamped now.
func createDefaultQuests(tx *sqlite.DB, clock domain.Clock, userID string) error {
	now := clock.Now()
	for _, tmpl := range defaultQuests {
		q := tmpl
		q.ID = uuid.NewString()
		q.UserID = userID
		q.CreatedAt = now
		if err := tx.InsertQuest(q); err != nil {
			return err
		}
	}
	return nil
}

// DailyQuests returns the quests created today (civil day). When none exist
// yet, the default set is seeded lazily first.
func (s *Service) DailyQuests(userID string) ([]domain.Quest, error) {
	from, to := domain.DayBounds(s.clock.Now())

	var quests []domain.Quest
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		var err error
		quests, err = tx.ListQuestsCreatedBetween(userID, from, to)
		if err != nil {
			return err
		}
		if len(quests) > 0 {
			return nil
		}
		if err := createDefaultQuests(tx, s.clock, userID); err != nil {
			return err
		}
		quests, err = tx.ListQuestsCreatedBetween(userID, from, to)
		return err
	})
	return quests, err
}

// AddQuest creates a custom quest for the user. Title is required; the XP
// reward defaults to 50 and the category to study.
func (s *Service) AddQuest(userID, title, description string, xpReward int, category domain.QuestCategory) (domain.Quest, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Quest{}, domain.ErrTitleRequired
	}
	if xpReward <= 0 {
		xpReward = DefaultXPReward
	}
	if category == "" {
		category = domain.CategoryStudy
	}

	q := domain.Quest{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		XPReward:    xpReward,
		Category:    category,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.db.InsertQuest(q); err != nil {
		return domain.Quest{}, err
	}
	return q, nil
}

// CompleteQuestResult is everything a completion changed.
type CompleteQuestResult struct {
	Quest           domain.Quest
	User            domain.User
	NewAchievements []domain.Achievement
}

// CompleteQuest completes a quest exactly once and applies the full reward
// chain atomically: XP grant and level re-derivation, streak touch, daily
// rollup, then achievement evaluation. Completing an already-completed
// quest is rejected, not ignored.
func (s *Service) CompleteQuest(questID string) (CompleteQuestResult, error) {
	var result CompleteQuestResult

	err := s.db.WithTx(func(tx *sqlite.DB) error {
		quest, err := tx.GetQuest(questID)
		if err != nil {
			return err
		}
		if quest.IsCompleted {
			return domain.ErrQuestCompleted
		}

		now := s.clock.Now()
		if err := tx.MarkQuestCompleted(questID, now); err != nil {
			return err
		}

		if _, err := grantXP(tx, quest.UserID, quest.XPReward, "quest"); err != nil {
			return err
		}
		if _, err := touchStreak(tx, s.clock, quest.UserID); err != nil {
			return err
		}
		if err := recordDaily(tx, s.clock, quest.UserID, 1, quest.XPReward, 0); err != nil {
			return err
		}

		result.NewAchievements, err = evaluateAchievements(tx, s.clock, quest.UserID)
		if err != nil {
			return err
		}

		result.Quest, err = tx.GetQuest(questID)
		if err != nil {
			return err
		}
		result.User, err = tx.GetUser(quest.UserID)
		return err
	})
	if err != nil {
		return CompleteQuestResult{}, err
	}

	metrics.QuestsCompleted.Inc()
	return result, nil
}
