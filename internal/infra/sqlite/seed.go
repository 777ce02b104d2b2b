package sqlite

import (
	"fmt"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

// Seed inserts the reference catalogs (achievements, pets, shop items).
// Insert-or-ignore by stable ID, so re-running at every startup is safe.
// Catalogs are treated as immutable after seeding.
func (d *DB) Seed() error {
	for _, a := range AchievementCatalog() {
		_, err := d.q.Exec(
			`INSERT OR IGNORE INTO achievements (id, name, description, icon, requirement, type, xp_reward)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, a.Description, a.Icon, a.Requirement, string(a.Type), a.XPReward,
		)
		if err != nil {
			return fmt.Errorf("seed achievement %s: %w", a.ID, err)
		}
	}

	for _, p := range PetCatalog() {
		_, err := d.q.Exec(
			`INSERT OR IGNORE INTO pets (id, name, emoji, description, rarity, subject)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Emoji, p.Description, p.Rarity, p.Subject,
		)
		if err != nil {
			return fmt.Errorf("seed pet %s: %w", p.ID, err)
		}
	}

	for _, item := range ShopCatalog() {
		_, err := d.q.Exec(
			`INSERT OR IGNORE INTO shop_items (id, name, description, icon, price, type, rarity)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.Name, item.Description, item.Icon, item.Price, item.Type, item.Rarity,
		)
		if err != nil {
			return fmt.Errorf("seed shop item %s: %w", item.ID, err)
		}
	}

	return nil
}

// AchievementCatalog is the full milestone catalog: three tiers for each of
// the five tracked metrics.
func AchievementCatalog() []domain.Achievement {
	return []domain.Achievement{
		{ID: "ach_streak_3", Name: "First Steps", Description: "Study 3 days in a row", Icon: "🌱", Requirement: 3, Type: domain.AchStreak, XPReward: 50},
		{ID: "ach_streak_7", Name: "Dedicated Learner", Description: "Study 7 days in a row", Icon: "📚", Requirement: 7, Type: domain.AchStreak, XPReward: 100},
		{ID: "ach_streak_30", Name: "Study Master", Description: "Study 30 days in a row", Icon: "🏆", Requirement: 30, Type: domain.AchStreak, XPReward: 500},
		{ID: "ach_xp_1000", Name: "Getting Experienced", Description: "Earn 1000 total XP", Icon: "⭐", Requirement: 1000, Type: domain.AchXP, XPReward: 100},
		{ID: "ach_xp_5000", Name: "Seasoned Scholar", Description: "Earn 5000 total XP", Icon: "🌟", Requirement: 5000, Type: domain.AchXP, XPReward: 300},
		{ID: "ach_xp_10000", Name: "Treasury of Knowledge", Description: "Earn 10000 total XP", Icon: "💫", Requirement: 10000, Type: domain.AchXP, XPReward: 500},
		{ID: "ach_quests_10", Name: "Quest Novice", Description: "Complete 10 quests", Icon: "✅", Requirement: 10, Type: domain.AchQuests, XPReward: 50},
		{ID: "ach_quests_50", Name: "Quest Expert", Description: "Complete 50 quests", Icon: "🎯", Requirement: 50, Type: domain.AchQuests, XPReward: 200},
		{ID: "ach_quests_100", Name: "Quest Legend", Description: "Complete 100 quests", Icon: "👑", Requirement: 100, Type: domain.AchQuests, XPReward: 500},
		{ID: "ach_pets_1", Name: "First Hatch", Description: "Hatch your first pet", Icon: "🐣", Requirement: 1, Type: domain.AchPets, XPReward: 100},
		{ID: "ach_pets_4", Name: "Pet Lover", Description: "Collect 4 pets", Icon: "🐾", Requirement: 4, Type: domain.AchPets, XPReward: 300},
		{ID: "ach_pets_8", Name: "Collector", Description: "Collect all 8 pets", Icon: "🏅", Requirement: 8, Type: domain.AchPets, XPReward: 1000},
		{ID: "ach_boss_1", Name: "Boss Slayer", Description: "Defeat your first boss", Icon: "⚔️", Requirement: 1, Type: domain.AchBoss, XPReward: 200},
		{ID: "ach_boss_3", Name: "Hero's Path", Description: "Defeat 3 bosses", Icon: "🗡️", Requirement: 3, Type: domain.AchBoss, XPReward: 500},
		{ID: "ach_boss_6", Name: "Legendary Hero", Description: "Defeat 6 bosses", Icon: "🛡️", Requirement: 6, Type: domain.AchBoss, XPReward: 1000},
	}
}

// PetCatalog is the eight-pet collection: 3 common, 2 rare, 2 epic,
// 1 legendary.
func PetCatalog() []domain.Pet {
	return []domain.Pet{
		{ID: "pet_stat", Name: "Stat-Chan", Emoji: "📊", Description: "A statistics sprite that helps you make sense of data", Rarity: domain.RarityCommon, Subject: "Statistics"},
		{ID: "pet_psycho", Name: "Psycho-Kun", Emoji: "🧠", Description: "A curious companion for exploring the mind", Rarity: domain.RarityCommon, Subject: "Psychology"},
		{ID: "pet_coffee", Name: "Coffee-Slime", Emoji: "☕", Description: "A caffeinated slime that keeps your focus sharp", Rarity: domain.RarityCommon, Subject: "Focus"},
		{ID: "pet_book", Name: "Book-Nyan", Emoji: "📚", Description: "A well-read cat with encyclopedic knowledge", Rarity: domain.RarityRare, Subject: "General Psychology"},
		{ID: "pet_flame", Name: "Flame-Sprite", Emoji: "🔥", Description: "A fiery spirit that keeps your motivation burning", Rarity: domain.RarityRare, Subject: "Motivation"},
		{ID: "pet_diamond", Name: "Diamond-Owl", Emoji: "💎", Description: "A brilliant owl of crystalline wisdom", Rarity: domain.RarityEpic, Subject: "Cognitive Psychology"},
		{ID: "pet_panda", Name: "Professor-Panda", Emoji: "🎓", Description: "A scholarly panda with a tenured chair", Rarity: domain.RarityEpic, Subject: "Developmental Psychology"},
		{ID: "pet_phoenix", Name: "Golden-Phoenix", Emoji: "🌟", Description: "The legendary golden phoenix of good fortune", Rarity: domain.RarityLegendary, Subject: "All Subjects"},
	}
}

// ShopCatalog is the spendable-XP store. Egg item IDs follow the
// egg_<rarity> convention that egg opening relies on.
func ShopCatalog() []domain.ShopItem {
	return []domain.ShopItem{
		{ID: "egg_common", Name: "Common Egg", Description: "Might hatch a common pet", Icon: "🥚", Price: 100, Type: "egg", Rarity: domain.RarityCommon},
		{ID: "egg_rare", Name: "Rare Egg", Description: "Might hatch a rare pet", Icon: "🥚", Price: 300, Type: "egg", Rarity: domain.RarityRare},
		{ID: "egg_epic", Name: "Epic Egg", Description: "Might hatch an epic pet", Icon: "🥚", Price: 600, Type: "egg", Rarity: domain.RarityEpic},
		{ID: "egg_legendary", Name: "Legendary Egg", Description: "Might hatch a legendary pet", Icon: "🥚", Price: 1000, Type: "egg", Rarity: domain.RarityLegendary},
		{ID: "food_apple", Name: "Apple", Description: "Feed your pet to raise its happiness", Icon: "🍎", Price: 20, Type: "food"},
		{ID: "food_cake", Name: "Cake", Description: "A big happiness boost for your pet", Icon: "🍰", Price: 50, Type: "food"},
		{ID: "toy_ball", Name: "Toy Ball", Description: "Play fetch with your pet", Icon: "⚽", Price: 30, Type: "toy"},
		{ID: "boost_xp", Name: "XP Doubler", Description: "Doubles the XP of your next quest", Icon: "✨", Price: 200, Type: "boost"},
	}
}
