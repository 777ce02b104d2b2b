// Package metrics registers Prometheus metrics for the reward engine.
// Exposed at /metrics when telemetry is enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// XPGranted counts experience granted, labeled by source.
var XPGranted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "xp_granted_total",
	Help:      "Experience points granted to users",
}, []string{"source"}) // quest | pomodoro | achievement | boss

// QuestsCompleted counts completed quests.
var QuestsCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "quests_completed_total",
	Help:      "Quests completed",
})

// PomodorosCompleted counts recorded focus sessions.
var PomodorosCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "pomodoros_completed_total",
	Help:      "Focus sessions recorded",
})

// AchievementsUnlocked counts achievement unlocks.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "achievements_unlocked_total",
	Help:      "Achievements unlocked across all users",
})

// EggsOpened counts egg openings, labeled by rarity.
var EggsOpened = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "eggs_opened_total",
	Help:      "Eggs opened",
}, []string{"rarity"})

// BossesDefeated counts monthly boss defeats.
var BossesDefeated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "bosses_defeated_total",
	Help:      "Monthly bosses defeated",
})

// ItemsPurchased counts shop purchases, labeled by item type.
var ItemsPurchased = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "studyquest",
	Name:      "items_purchased_total",
	Help:      "Shop items purchased",
}, []string{"type"})
