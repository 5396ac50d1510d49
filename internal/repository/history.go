package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// History owns the append-only usage ledger.
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

func (r *History) CountBetween(userID int64, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`
SELECT COUNT(*)
	FROM usage_records
WHERE user_id = $1 AND created_at >= $2 AND created_at < $3;`,
		userID, from, to).Scan(&count)

	return count, errors.Wrap(err, "count usage records")
}

// Save appends the record and, when the user is already at or over the
// daily limit and holds bonus credit, consumes exactly one credit and
// flags the record. Count check, balance decrement and insert happen in
// one transaction.
func (r *History) Save(rec *model.UsageRecord, dailyLimit int, from, to time.Time) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, errors.Wrap(err, "begin usage tx")
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(`
SELECT COUNT(*)
	FROM usage_records
WHERE user_id = $1 AND created_at >= $2 AND created_at < $3;`,
		rec.UserID, from, to).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "count usage in tx")
	}

	bonusFunded := false
	if count >= dailyLimit {
		var balance int
		err = tx.QueryRow(`
SELECT bonus_balance FROM users WHERE id = $1 FOR UPDATE;`, rec.UserID).Scan(&balance)
		if err != nil {
			return false, errors.Wrap(err, "lock bonus balance")
		}

		if balance > 0 {
			_, err = tx.Exec(`
UPDATE users
	SET bonus_balance = bonus_balance - 1, updated_at = now()
WHERE id = $1;`, rec.UserID)
			if err != nil {
				return false, errors.Wrap(err, "consume bonus credit")
			}
			bonusFunded = true
		}
	}

	_, err = tx.Exec(`
INSERT INTO usage_records (user_id, category, variant, input_data, result, bonus_funded)
	VALUES ($1, $2, $3, $4, $5, $6);`,
		rec.UserID, rec.Category, rec.Variant, rec.InputData, rec.Result, bonusFunded)
	if err != nil {
		return false, errors.Wrap(err, "insert usage record")
	}

	return bonusFunded, errors.Wrap(tx.Commit(), "commit usage tx")
}

func (r *History) CountAll() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM usage_records;`).Scan(&count)
	return count, errors.Wrap(err, "count all usage records")
}

func (r *History) CountAllBetween(from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`
SELECT COUNT(*) FROM usage_records WHERE created_at >= $1 AND created_at < $2;`,
		from, to).Scan(&count)
	return count, errors.Wrap(err, "count usage records in range")
}

func (r *History) ActiveUsersBetween(from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`
SELECT COUNT(DISTINCT user_id) FROM usage_records WHERE created_at >= $1 AND created_at < $2;`,
		from, to).Scan(&count)
	return count, errors.Wrap(err, "count active users")
}

type CategoryCount struct {
	Category string
	Count    int
}

func (r *History) CountByCategory() ([]CategoryCount, error) {
	rows, err := r.db.Query(`
SELECT category, COUNT(*)
	FROM usage_records
GROUP BY category
ORDER BY COUNT(*) DESC;`)
	if err != nil {
		return nil, errors.Wrap(err, "count by category")
	}
	defer rows.Close()

	var result []CategoryCount
	for rows.Next() {
		var item CategoryCount
		if err := rows.Scan(&item.Category, &item.Count); err != nil {
			return nil, model.ErrScanSqlRow
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

type VariantCount struct {
	Category string
	Variant  string
	Count    int
}

func (r *History) TopVariants(limit int) ([]VariantCount, error) {
	rows, err := r.db.Query(`
SELECT category, variant, COUNT(*)
	FROM usage_records
GROUP BY category, variant
ORDER BY COUNT(*) DESC
LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "top variants")
	}
	defer rows.Close()

	var result []VariantCount
	for rows.Next() {
		var item VariantCount
		if err := rows.Scan(&item.Category, &item.Variant, &item.Count); err != nil {
			return nil, model.ErrScanSqlRow
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

type UserCount struct {
	UserID    int64
	Username  string
	FirstName string
	Count     int
}

func (r *History) TopUsers(limit int) ([]UserCount, error) {
	rows, err := r.db.Query(`
SELECT u.id, u.username, u.first_name, COUNT(*)
	FROM usage_records h
	JOIN users u ON u.id = h.user_id
GROUP BY u.id, u.username, u.first_name
ORDER BY COUNT(*) DESC
LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "top users")
	}
	defer rows.Close()

	var result []UserCount
	for rows.Next() {
		var item UserCount
		if err := rows.Scan(&item.UserID, &item.Username, &item.FirstName, &item.Count); err != nil {
			return nil, model.ErrScanSqlRow
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

type DayCount struct {
	Day   time.Time
	Count int
}

func (r *History) DailyActivity(from, to time.Time) ([]DayCount, error) {
	rows, err := r.db.Query(`
SELECT date_trunc('day', created_at) AS day, COUNT(*)
	FROM usage_records
WHERE created_at >= $1 AND created_at < $2
GROUP BY day
ORDER BY day;`, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "daily activity")
	}
	defer rows.Close()

	var result []DayCount
	for rows.Next() {
		var item DayCount
		if err := rows.Scan(&item.Day, &item.Count); err != nil {
			return nil, model.ErrScanSqlRow
		}
		result = append(result, item)
	}

	return result, rows.Err()
}
