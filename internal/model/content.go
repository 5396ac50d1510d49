package model

// TarotCard carries both stored meanings; orientation at draw time
// selects which one is shown.
type TarotCard struct {
	ID              int64
	Name            string
	ArcanaType      string
	Suit            string
	UprightMeaning  string
	ReversedMeaning string
}

const (
	ArcanaMajor = "major"
	ArcanaMinor = "minor"
)

type NumerologyText struct {
	Number      int
	Type        string
	Description string
}

const (
	CalcDestiny   = "destiny"
	CalcName      = "name"
	CalcLifeCycle = "life_cycle"
)

// ZodiacSign boundaries are month-day pairs in "MM-DD" form; one sign's
// range wraps across the calendar year.
type ZodiacSign struct {
	Name        string
	DateStart   string
	DateEnd     string
	Description string
}
