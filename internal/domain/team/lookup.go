package team

// stadiumOpened holds the year each current home stadium opened, keyed by team abbreviation.
// Upstream does not expose this field.
var stadiumOpened = map[string]int{
	"ARI": 2006, // State Farm Stadium
	"ATL": 2017, // Mercedes-Benz Stadium
	"BAL": 1998, // M&T Bank Stadium
	"BUF": 1973, // Highmark Stadium
	"CAR": 1996, // Bank of America Stadium
	"CHI": 1924, // Soldier Field
	"CIN": 2000, // Paycor Stadium
	"CLE": 1999, // Huntington Bank Field
	"DAL": 2009, // AT&T Stadium
	"DEN": 2001, // Empower Field at Mile High
	"DET": 2002, // Ford Field
	"GB":  1957, // Lambeau Field
	"HOU": 2002, // NRG Stadium
	"IND": 2008, // Lucas Oil Stadium
	"JAX": 1995, // EverBank Stadium
	"KC":  1972, // GEHA Field at Arrowhead Stadium
	"LAC": 2020, // SoFi Stadium
	"LAR": 2020, // SoFi Stadium
	"LV":  2020, // Allegiant Stadium
	"MIA": 1987, // Hard Rock Stadium
	"MIN": 2016, // U.S. Bank Stadium
	"NE":  2002, // Gillette Stadium
	"NO":  1975, // Caesars Superdome
	"NYG": 2010, // MetLife Stadium
	"NYJ": 2010, // MetLife Stadium
	"PHI": 2003, // Lincoln Financial Field
	"PIT": 2001, // Acrisure Stadium
	"SEA": 2002, // Lumen Field
	"SF":  2014, // Levi's Stadium
	"TB":  1998, // Raymond James Stadium
	"TEN": 1999, // Nissan Stadium
	"WSH": 1997, // Northwest Stadium
}

// leaderCategories lists the league-stat categories surfaced as player leaders, in display order.
var leaderCategories = []string{
	"passingYards",
	"passingTouchdowns",
	"rushingYards",
	"receivingYards",
	"totalTackles",
	"sacks",
	"interceptions",
}

var leaderCategorySet = func() map[string]struct{} {
	out := make(map[string]struct{}, len(leaderCategories))
	for _, name := range leaderCategories {
		out[name] = struct{}{}
	}
	return out
}()

// StadiumOpenedYear returns the opening year of the team's stadium, or nil for unknown abbreviations.
func StadiumOpenedYear(abbreviation string) *int {
	year, ok := stadiumOpened[abbreviation]
	if !ok {
		return nil
	}
	return &year
}

func IsLeaderCategory(name string) bool {
	_, ok := leaderCategorySet[name]
	return ok
}

// LeaderCategories returns a copy of the leader category allowlist.
func LeaderCategories() []string {
	out := make([]string, len(leaderCategories))
	copy(out, leaderCategories)
	return out
}
