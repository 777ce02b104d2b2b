// Package domain holds the Study Quest entity types and sentinel errors.
// Domain types are pure — no storage or transport dependency.
package domain

import "time"

// User is a single player account. Level is a cached derivation of TotalXP
// and is recomputed whenever TotalXP changes.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Level         int       `json:"level"`
	XP            int       `json:"xp"`      // spendable balance
	TotalXP       int       `json:"totalXp"` // lifetime, never decreases
	Streak        int       `json:"streak"`
	LongestStreak int       `json:"longestStreak"`
	LastStudyDate string    `json:"lastStudyDate"` // civil date, "" if never studied
	CreatedAt     time.Time `json:"createdAt"`
}

// QuestCategory classifies a quest.
type QuestCategory string

const (
	CategoryStudy    QuestCategory = "study"
	CategoryReview   QuestCategory = "review"
	CategoryPractice QuestCategory = "practice"
	CategoryPomodoro QuestCategory = "pomodoro"
)

// Quest is a completable study task worth a fixed XP reward.
type Quest struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	XPReward    int           `json:"xpReward"`
	Category    QuestCategory `json:"category"`
	IsCompleted bool          `json:"isCompleted"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt"`
}

// AchievementType selects which user metric an achievement is checked against.
type AchievementType string

const (
	AchStreak AchievementType = "streak"
	AchXP     AchievementType = "xp"
	AchQuests AchievementType = "quests"
	AchPets   AchievementType = "pets"
	AchBoss   AchievementType = "boss"
)

// Achievement is a catalog entry, immutable after seeding.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Requirement int             `json:"requirement"`
	Type        AchievementType `json:"type"`
	XPReward    int             `json:"xpReward"`
}

// UserAchievement records a one-time unlock per (user, achievement).
type UserAchievement struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	AchievementID string      `json:"achievementId"`
	UnlockedAt    time.Time   `json:"unlockedAt"`
	Achievement   Achievement `json:"achievement"`
}

// ShopItem is a catalog entry. Rarity is set only for eggs.
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       int    `json:"price"`
	Type        string `json:"type"` // egg | food | toy | boost
	Rarity      string `json:"rarity,omitempty"`
}

// UserItem is a per (user, item) quantity counter.
type UserItem struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	ItemID   string   `json:"itemId"`
	Quantity int      `json:"quantity"`
	Item     ShopItem `json:"item"`
}

// Pet rarities.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Pet is a catalog entry, one per rarity/subject combination.
type Pet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Subject     string `json:"subject"`
}

// Pet progression bounds.
const (
	PetMaxLevel      = 10
	PetExpPerLevel   = 100
	PetMaxHappiness  = 100
	HatchProgressMax = 10
)

// UserPet is an owned pet instance. Created unhatched by opening an egg.
type UserPet struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	PetID           string      `json:"petId"`
	Level           int         `json:"level"`
	Exp             int         `json:"exp"`
	Happiness       int         `json:"happiness"`
	IsHatched       bool        `json:"isHatched"`
	HatchProgress   int         `json:"hatchProgress"`
	AcquiredAt      time.Time   `json:"acquiredAt"`
	LastInteraction *time.Time  `json:"lastInteraction"`
	Pet             Pet         `json:"pet"`
}

// PetAction is an interaction with a hatched pet.
type PetAction string

const (
	ActionFeed PetAction = "feed"
	ActionPat  PetAction = "pat"
	ActionPlay PetAction = "play"
)

// BossBattle is the per-user monthly encounter. HP only decreases.
type BossBattle struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	BossName   string `json:"bossName"`
	BossHP     int    `json:"bossHp"`
	CurrentHP  int    `json:"currentHp"`
	Month      string `json:"month"` // civil year-month bucket, "2006-01"
	IsDefeated bool   `json:"isDefeated"`
	Rewards    int    `json:"rewards"`
}

// DailyStat is a per (user, date) additive rollup.
type DailyStat struct {
	Date                string `json:"date"`
	QuestsCompleted     int    `json:"questsCompleted"`
	XPEarned            int    `json:"xpEarned"`
	PomodorosCompleted  int    `json:"pomodorosCompleted"`
}

// StudySession is an append-only log entry for a completed focus session.
type StudySession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	DurationMinutes int       `json:"durationMinutes"`
	SessionType     string    `json:"sessionType"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StatsSummary aggregates lifetime counters for one user.
type StatsSummary struct {
	TotalStudyTime       int `json:"totalStudyTime"` // minutes
	QuestsCompleted      int `json:"questsCompleted"`
	PomodorosCompleted   int `json:"pomodorosCompleted"`
	BossesDefeated       int `json:"bossesDefeated"`
	PetsCollected        int `json:"petsCollected"`
	AchievementsUnlocked int `json:"achievementsUnlocked"`
	CurrentStreak        int `json:"currentStreak"`
	LongestStreak        int `json:"longestStreak"`
}
