package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

type Referrals struct {
	db *sql.DB
}

func NewReferrals(db *sql.DB) *Referrals {
	return &Referrals{db: db}
}

const uniqueViolation = "23505"

// Link records the referral and applies both credits as one atomic
// unit: the link row, the invited user's immutable inviter reference,
// the inviter's bonus and the invited user's welcome bonus all land
// together or not at all. A duplicate invited user yields
// ErrReferralExists.
func (r *Referrals) Link(inviterID, invitedID int64, inviterBonus, welcomeBonus int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin referral tx")
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
INSERT INTO referrals (inviter_id, invited_id)
	VALUES ($1, $2);`, inviterID, invitedID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return model.ErrReferralExists
		}
		return errors.Wrap(err, "insert referral link")
	}

	_, err = tx.Exec(`
UPDATE users
	SET referred_by = $1, updated_at = now()
WHERE id = $2 AND referred_by IS NULL;`, inviterID, invitedID)
	if err != nil {
		return errors.Wrap(err, "set inviter reference")
	}

	_, err = tx.Exec(`
UPDATE users
	SET bonus_balance = bonus_balance + $1, updated_at = now()
WHERE id = $2;`, inviterBonus, inviterID)
	if err != nil {
		return errors.Wrap(err, "credit inviter bonus")
	}

	if welcomeBonus > 0 {
		_, err = tx.Exec(`
UPDATE users
	SET bonus_balance = bonus_balance + $1, updated_at = now()
WHERE id = $2;`, welcomeBonus, invitedID)
		if err != nil {
			return errors.Wrap(err, "credit welcome bonus")
		}
	}

	return errors.Wrap(tx.Commit(), "commit referral tx")
}

func (r *Referrals) Exists(invitedID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
SELECT EXISTS (SELECT 1 FROM referrals WHERE invited_id = $1);`, invitedID).Scan(&exists)
	return exists, errors.Wrap(err, "check referral link")
}

func (r *Referrals) CountByInviter(inviterID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
SELECT COUNT(*) FROM referrals WHERE inviter_id = $1;`, inviterID).Scan(&count)
	return count, errors.Wrap(err, "count referrals")
}
