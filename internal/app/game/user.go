package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// Login finds the user by username, creating the account on first login.
// A fresh account starts at level 1 with zero XP and gets the five default
// daily quests seeded immediately.
func (s *Service) Login(username string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, domain.ErrUsernameRequired
	}

	var user domain.User
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		var err error
		user, err = tx.GetUserByUsername(username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		user = domain.User{
			ID:        uuid.NewString(),
			Username:  username,
			Level:     1,
			CreatedAt: s.clock.Now(),
		}
		if err := tx.InsertUser(user); err != nil {
			return err
		}
		return createDefaultQuests(tx, s.clock, user.ID)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// User returns the user record with the level re-derived from the lifetime
// total, so a read never exposes a drifted cache.
func (s *Service) User(userID string) (domain.User, error) {
	user, err := s.db.GetUser(userID)
	if err != nil {
		return domain.User{}, err
	}
	user.Level = LevelOf(user.TotalXP).Level
	return user, nil
}
