package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// DuplicatePetBonusExp is credited to an already-owned pet when an egg
// rolls it again.
const DuplicatePetBonusExp = 50

// Pets returns the pet catalog.
func (s *Service) Pets() ([]domain.Pet, error) {
	return s.db.ListPets()
}

// UserPets returns the user's collection joined with the catalog.
func (s *Service) UserPets(userID string) ([]domain.UserPet, error) {
	return s.db.ListUserPets(userID)
}

// OpenEggResult is the outcome of opening an egg.
type OpenEggResult struct {
	UserPet   domain.UserPet
	Pet       domain.Pet
	Duplicate bool
}

// OpenEgg consumes one egg of the given rarity from the inventory and rolls
// a uniform random catalog pet of that rarity. Rolling a pet the user
// already owns credits a fixed bonus to the existing pet instead of
// creating a second row.
func (s *Service) OpenEgg(userID, rarity string) (OpenEggResult, error) {
	eggItemID := "egg_" + rarity

	var result OpenEggResult
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		held, err := tx.GetUserItem(userID, eggItemID)
		if err != nil || held.Quantity <= 0 {
			return domain.ErrNoEggInInventory
		}

		pets, err := tx.ListPetsByRarity(rarity)
		if err != nil {
			return err
		}
		if len(pets) == 0 {
			return domain.ErrNoPetsForRarity
		}
		rolled := pets[s.randInt(len(pets))]

		if err := tx.ConsumeUserItem(userID, eggItemID, domain.ErrNoEggInInventory); err != nil {
			return err
		}

		existing, err := tx.GetUserPetByPet(userID, rolled.ID)
		switch {
		case err == nil:
			// Duplicate — bonus experience for the pet already owned.
			if err := tx.AddUserPetExp(existing.ID, DuplicatePetBonusExp); err != nil {
				return err
			}
			result.UserPet, err = tx.GetUserPet(existing.ID)
			if err != nil {
				return err
			}
			result.Duplicate = true

		case errors.Is(err, domain.ErrPetNotFound):
			up := domain.UserPet{
				ID:         uuid.NewString(),
				UserID:     userID,
				PetID:      rolled.ID,
				Level:      1,
				Happiness:  domain.PetMaxHappiness,
				AcquiredAt: s.clock.Now(),
			}
			if err := tx.InsertUserPet(up); err != nil {
				return err
			}
			result.UserPet = up

		default:
			return err
		}

		result.Pet = rolled
		return nil
	})
	if err != nil {
		return OpenEggResult{}, err
	}

	metrics.EggsOpened.WithLabelValues(rarity).Inc()
	return result, nil
}

// AddHatchProgress advances an unhatched pet's hatch counter by one,
// capped at the hatch threshold. Intended to be called once per qualifying
// focus session; the caller chooses which unhatched pet advances.
func (s *Service) AddHatchProgress(userPetID string) (domain.UserPet, error) {
	var pet domain.UserPet
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		var err error
		pet, err = tx.GetUserPet(userPetID)
		if err != nil {
			return err
		}
		if pet.IsHatched {
			return domain.ErrAlreadyHatched
		}

		progress := pet.HatchProgress + 1
		if progress > domain.HatchProgressMax {
			progress = domain.HatchProgressMax
		}
		if err := tx.SetUserPetHatchProgress(userPetID, progress); err != nil {
			return err
		}
		pet.HatchProgress = progress
		return nil
	})
	if err != nil {
		return domain.UserPet{}, err
	}
	return pet, nil
}

// Hatch flips an egg-complete pet to hatched. Requires full hatch progress;
// hatching moves the pets-hatched metric, so achievements are evaluated.
func (s *Service) Hatch(userPetID string) (domain.UserPet, error) {
	var pet domain.UserPet
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		var err error
		pet, err = tx.GetUserPet(userPetID)
		if err != nil {
			return err
		}
		if pet.IsHatched {
			return domain.ErrAlreadyHatched
		}
		if pet.HatchProgress < domain.HatchProgressMax {
			return domain.ErrNotEnoughProgress
		}

		if err := tx.MarkUserPetHatched(userPetID); err != nil {
			return err
		}
		if _, err := evaluateAchievements(tx, s.clock, pet.UserID); err != nil {
			return err
		}

		pet, err = tx.GetUserPet(userPetID)
		return err
	})
	if err != nil {
		return domain.UserPet{}, err
	}
	return pet, nil
}

// interactionEffects maps each action to its (happiness, experience) gain.
var interactionEffects = map[domain.PetAction]struct{ happiness, exp int }{
	domain.ActionFeed: {10, 5},
	domain.ActionPat:  {5, 3},
	domain.ActionPlay: {15, 10},
}

// Interact applies a feed/pat/play action to a hatched pet. Happiness is
// clamped at 100; experience levels the pet in 100-point steps up to the
// level cap, keeping the remainder.
func (s *Service) Interact(userPetID string, action domain.PetAction) (domain.UserPet, error) {
	effect, ok := interactionEffects[action]
	if !ok {
		return domain.UserPet{}, domain.ErrInvalidAction
	}

	var pet domain.UserPet
	err := s.db.WithTx(func(tx *sqlite.DB) error {
		var err error
		pet, err = tx.GetUserPet(userPetID)
		if err != nil {
			return err
		}
		if !pet.IsHatched {
			return domain.ErrNotHatched
		}

		happiness := pet.Happiness + effect.happiness
		if happiness > domain.PetMaxHappiness {
			happiness = domain.PetMaxHappiness
		}

		exp := pet.Exp + effect.exp
		level := pet.Level
		for exp >= domain.PetExpPerLevel && level < domain.PetMaxLevel {
			exp -= domain.PetExpPerLevel
			level++
		}

		now := s.clock.Now()
		if err := tx.UpdateUserPetInteraction(userPetID, happiness, exp, level, now); err != nil {
			return err
		}

		pet.Happiness = happiness
		pet.Exp = exp
		pet.Level = level
		pet.LastInteraction = &now
		return nil
	})
	if err != nil {
		return domain.UserPet{}, err
	}
	return pet, nil
}
