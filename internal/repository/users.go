package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// Users reads and writes profile rows. Every method returns value
// snapshots; mutations go through explicit UPDATE ... RETURNING calls.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

const userColumns = `id, username, first_name, name, birth_date, gender, language, referred_by, bonus_balance, created_at, updated_at`

func (r *Users) ByID(id int64) (*model.User, error) {
	row := r.db.QueryRow(`
SELECT `+userColumns+`
	FROM users
WHERE id = $1;`, id)

	return scanUser(row)
}

// GetOrCreate resolves the persisted profile for a platform identity,
// creating it on very first contact. The second return reports whether
// the row was created by this call.
func (r *Users) GetOrCreate(id int64, username, firstName, language string) (*model.User, bool, error) {
	user, err := r.ByID(id)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, false, err
	}

	row := r.db.QueryRow(`
INSERT INTO users (id, username, first_name, language)
	VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET updated_at = now()
RETURNING `+userColumns+`;`,
		id, username, firstName, language)

	user, err = scanUser(row)
	if err != nil {
		return nil, false, errors.Wrap(err, "create user")
	}

	return user, true, nil
}

func (r *Users) UpdateName(id int64, name string) (*model.User, error) {
	return r.update(id, `name = $2`, name)
}

func (r *Users) UpdateBirthDate(id int64, birthDate time.Time) (*model.User, error) {
	return r.update(id, `birth_date = $2`, birthDate)
}

func (r *Users) UpdateGender(id int64, gender string) (*model.User, error) {
	return r.update(id, `gender = $2`, gender)
}

func (r *Users) UpdateLanguage(id int64, language string) (*model.User, error) {
	return r.update(id, `language = $2`, language)
}

func (r *Users) update(id int64, setClause string, value interface{}) (*model.User, error) {
	row := r.db.QueryRow(`
UPDATE users
	SET `+setClause+`, updated_at = now()
WHERE id = $1
RETURNING `+userColumns+`;`, id, value)

	return scanUser(row)
}

// Delete removes the profile; usage records go with it via the cascade.
// Referral links are retained so the one-link-per-invited invariant
// survives re-registration.
func (r *Users) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = $1;`, id)
	return errors.Wrap(err, "delete user")
}

func (r *Users) AllIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT id FROM users ORDER BY id;`)
	if err != nil {
		return nil, errors.Wrap(err, "query user ids")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, model.ErrScanSqlRow
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *Users) CountAll() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users;`).Scan(&count)
	return count, errors.Wrap(err, "count users")
}

func (r *Users) CountCreatedSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE created_at >= $1;`, since).Scan(&count)
	return count, errors.Wrap(err, "count new users")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	var (
		birthDate  sql.NullTime
		referredBy sql.NullInt64
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.Name,
		&birthDate,
		&user.Gender,
		&user.Language,
		&referredBy,
		&user.BonusBalance,
		&user.CreatedAt,
		&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, model.ErrScanSqlRow
	}

	if birthDate.Valid {
		value := birthDate.Time
		user.BirthDate = &value
	}
	if referredBy.Valid {
		value := referredBy.Int64
		user.ReferredBy = &value
	}

	return user, nil
}
