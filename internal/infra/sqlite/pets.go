package sqlite

import (
	"database/sql"
	"time"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

const petColumns = `id, name, emoji, description, rarity, subject`

func scanPet(row rowScanner) (domain.Pet, error) {
	var p domain.Pet
	err := row.Scan(&p.ID, &p.Name, &p.Emoji, &p.Description, &p.Rarity, &p.Subject)
	if err == sql.ErrNoRows {
		return p, domain.ErrPetNotFound
	}
	return p, err
}

// ListPets returns the pet catalog ordered by rarity then name.
func (d *DB) ListPets() ([]domain.Pet, error) {
	rows, err := d.q.Query(`SELECT ` + petColumns + ` FROM pets ORDER BY rarity, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPets(rows)
}

// ListPetsByRarity returns catalog pets of one rarity.
func (d *DB) ListPetsByRarity(rarity string) ([]domain.Pet, error) {
	rows, err := d.q.Query(`SELECT `+petColumns+` FROM pets WHERE rarity = ? ORDER BY id`, rarity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPets(rows)
}

func collectPets(rows *sql.Rows) ([]domain.Pet, error) {
	var pets []domain.Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

const userPetColumns = `id, user_id, pet_id, level, exp, happiness, is_hatched, hatch_progress, acquired_at, last_interaction`

func scanUserPet(row rowScanner) (domain.UserPet, error) {
	var up domain.UserPet
	var acquiredAt int64
	var lastInteraction sql.NullInt64
	err := row.Scan(&up.ID, &up.UserID, &up.PetID, &up.Level, &up.Exp, &up.Happiness,
		&up.IsHatched, &up.HatchProgress, &acquiredAt, &lastInteraction)
	if err == sql.ErrNoRows {
		return up, domain.ErrPetNotFound
	}
	if err != nil {
		return up, err
	}
	up.AcquiredAt = time.Unix(acquiredAt, 0).In(domain.StudyZone)
	if lastInteraction.Valid {
		t := time.Unix(lastInteraction.Int64, 0).In(domain.StudyZone)
		up.LastInteraction = &t
	}
	return up, nil
}

// InsertUserPet creates a new owned pet row.
func (d *DB) InsertUserPet(up domain.UserPet) error {
	_, err := d.q.Exec(
		`INSERT INTO user_pets (id, user_id, pet_id, level, exp, happiness, is_hatched, hatch_progress, acquired_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		up.ID, up.UserID, up.PetID, up.Level, up.Exp, up.Happiness,
		up.IsHatched, up.HatchProgress, up.AcquiredAt.Unix(),
	)
	return err
}

// GetUserPet retrieves an owned pet by row ID.
func (d *DB) GetUserPet(id string) (domain.UserPet, error) {
	row := d.q.QueryRow(`SELECT `+userPetColumns+` FROM user_pets WHERE id = ?`, id)
	return scanUserPet(row)
}

// GetUserPetByPet finds the (user, catalog pet) row if it exists.
func (d *DB) GetUserPetByPet(userID, petID string) (domain.UserPet, error) {
	row := d.q.QueryRow(
		`SELECT `+userPetColumns+` FROM user_pets WHERE user_id = ? AND pet_id = ?`,
		userID, petID,
	)
	return scanUserPet(row)
}

// AddUserPetExp atomically grants raw experience to a pet (duplicate-egg
// bonus path — no leveling applied here).
func (d *DB) AddUserPetExp(id string, amount int) error {
	res, err := d.q.Exec(`UPDATE user_pets SET exp = exp + ? WHERE id = ?`, amount, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrPetNotFound)
}

// SetUserPetHatchProgress stores the capped hatch counter.
func (d *DB) SetUserPetHatchProgress(id string, progress int) error {
	_, err := d.q.Exec(`UPDATE user_pets SET hatch_progress = ? WHERE id = ?`, progress, id)
	return err
}

// MarkUserPetHatched flips the hatched flag.
func (d *DB) MarkUserPetHatched(id string) error {
	_, err := d.q.Exec(`UPDATE user_pets SET is_hatched = 1 WHERE id = ?`, id)
	return err
}

// UpdateUserPetInteraction stores the outcome of a feed/pat/play action.
func (d *DB) UpdateUserPetInteraction(id string, happiness, exp, level int, at time.Time) error {
	_, err := d.q.Exec(
		`UPDATE user_pets SET happiness = ?, exp = ?, level = ?, last_interaction = ? WHERE id = ?`,
		happiness, exp, level, at.Unix(), id,
	)
	return err
}

// ListUserPets returns a user's pets joined with the catalog, newest first.
func (d *DB) ListUserPets(userID string) ([]domain.UserPet, error) {
	rows, err := d.q.Query(
		`SELECT up.id, up.user_id, up.pet_id, up.level, up.exp, up.happiness,
		        up.is_hatched, up.hatch_progress, up.acquired_at, up.last_interaction,
		        p.id, p.name, p.emoji, p.description, p.rarity, p.subject
		 FROM user_pets up
		 JOIN pets p ON up.pet_id = p.id
		 WHERE up.user_id = ?
		 ORDER BY up.acquired_at DESC, up.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pets []domain.UserPet
	for rows.Next() {
		var up domain.UserPet
		var acquiredAt int64
		var lastInteraction sql.NullInt64
		err := rows.Scan(&up.ID, &up.UserID, &up.PetID, &up.Level, &up.Exp, &up.Happiness,
			&up.IsHatched, &up.HatchProgress, &acquiredAt, &lastInteraction,
			&up.Pet.ID, &up.Pet.Name, &up.Pet.Emoji, &up.Pet.Description,
			&up.Pet.Rarity, &up.Pet.Subject)
		if err != nil {
			return nil, err
		}
		up.AcquiredAt = time.Unix(acquiredAt, 0).In(domain.StudyZone)
		if lastInteraction.Valid {
			t := time.Unix(lastInteraction.Int64, 0).In(domain.StudyZone)
			up.LastInteraction = &t
		}
		pets = append(pets, up)
	}
	return pets, rows.Err()
}

// CountHatchedPets returns how many of the user's pets are hatched.
func (d *DB) CountHatchedPets(userID string) (int, error) {
	var count int
	err := d.q.QueryRow(
		`SELECT COUNT(*) FROM user_pets WHERE user_id = ? AND is_hatched = 1`, userID,
	).Scan(&count)
	return count, err
}
