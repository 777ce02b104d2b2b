package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// The API layer maps these onto HTTP statuses with errors.Is.

var (
	// Validation
	ErrUsernameRequired = errors.New("username is required")
	ErrTitleRequired    = errors.New("quest title is required")
	ErrInvalidAction    = errors.New("invalid pet action")

	// Not found
	ErrUserNotFound   = errors.New("user not found")
	ErrQuestNotFound  = errors.New("quest not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrPetNotFound    = errors.New("pet not found")
	ErrNoActiveBattle = errors.New("no active boss battle")

	// Preconditions
	ErrQuestCompleted    = errors.New("quest already completed")
	ErrInsufficientXP    = errors.New("not enough XP")
	ErrNoEggInInventory  = errors.New("no egg of this rarity in inventory")
	ErrNoPetsForRarity   = errors.New("no pets available for this rarity")
	ErrAlreadyHatched    = errors.New("pet already hatched")
	ErrNotHatched        = errors.New("pet not hatched yet")
	ErrNotEnoughProgress = errors.New("not enough hatch progress")
)
