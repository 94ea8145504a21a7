package team

import "strconv"

const (
	// Placeholder is shown wherever upstream omits a displayable value.
	Placeholder = "—"

	DefaultColor          = "013369"
	DefaultAlternateColor = "d50a0a"

	SurfaceGrass = "Grass"
	SurfaceTurf  = "Turf"
)

// Record is a team's win/loss/tie line for the current season.
type Record struct {
	Wins       int
	Losses     int
	Ties       int
	WinPercent float64
}

// NewRecord builds a record and derives the win percentage rounded to one decimal.
func NewRecord(wins, losses, ties int) Record {
	return Record{
		Wins:       wins,
		Losses:     losses,
		Ties:       ties,
		WinPercent: WinPercentage(wins, losses, ties),
	}
}

// WinPercentage returns wins/(wins+losses+ties)*100 rounded to one decimal, or 0 with no games played.
func WinPercentage(wins, losses, ties int) float64 {
	total := wins + losses + ties
	if total <= 0 {
		return 0
	}
	return round1(float64(wins) / float64(total) * 100)
}

// Summary is one row of the league-wide team listing.
type Summary struct {
	ID           string
	Name         string
	Abbreviation string
	City         string
	DisplayName  string
	LogoURL      string
	Record
}

type Venue struct {
	Name    string
	City    string
	State   string
	Opened  *int
	Surface string
	Indoor  bool
}

type StatLine struct {
	Label string
	Value string
}

type StatGroups struct {
	Offense []StatLine
	Defense []StatLine
}

type PlayerLeader struct {
	Category    string
	PlayerName  string
	Value       string
	HeadshotURL string
}

type RosterEntry struct {
	Unit        string
	Name        string
	Position    string
	Jersey      string
	HeadshotURL string
}

// Detail is the per-team page view model.
type Detail struct {
	ID             string
	DisplayName    string
	Name           string
	City           string
	Abbreviation   string
	Color          string
	AlternateColor string
	LogoURL        string
	Venue          Venue
	TeamStats      StatGroups
	PlayerLeaders  []PlayerLeader
	Roster         []RosterEntry
}

// round1 rounds to one decimal from the exact binary value, ties to even.
func round1(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return rounded
}
