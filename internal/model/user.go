package model

import "time"

// User is an immutable snapshot of a persisted profile. The ID is the
// platform-assigned telegram identifier.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	Name         string
	BirthDate    *time.Time
	Gender       string
	Language     string
	ReferredBy   *int64
	BonusBalance int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Referral links an inviter to an invited user. The invited side is
// unique system-wide, ever.
type Referral struct {
	InviterID int64
	InvitedID int64
	CreatedAt time.Time
}

// UsageRecord is one completed content-generation action. Append-only.
type UsageRecord struct {
	ID          int64
	UserID      int64
	Category    string
	Variant     string
	InputData   string
	Result      string
	BonusFunded bool
	CreatedAt   time.Time
}

type Setting struct {
	Key   string
	Value string
}

// ReferralSettings is the decoded view of the referral-related settings
// rows.
type ReferralSettings struct {
	Bonus        int
	WelcomeBonus int
	Enabled      bool
}

const (
	CategoryTarot      = "tarot"
	CategoryNumerology = "numerology"
	CategoryAstrology  = "astro"
	CategoryRune       = "rune"
	CategoryMetaphor   = "metaphor"
)
