package usecase

import (
	"testing"

	"github.com/riskibarqy/gridiron-teams/internal/domain/team"
)

func strPtr(value string) *string {
	return &value
}

func TestBuildTeamStats_FillsPlaceholdersForMissingValues(t *testing.T) {
	t.Parallel()

	stats := buildTeamStats([]ExternalStatCategory{
		{
			Name: "passing",
			Stats: []ExternalStat{
				{Name: "completionPct", DisplayValue: strPtr("64.2")},
				{Name: "QBRating", DisplayValue: strPtr("")},
				{Name: "totalPoints"},
			},
		},
		{
			Name: "defensive",
			Stats: []ExternalStat{
				{Name: "sacks", DisplayValue: strPtr("48")},
				{Name: "avgInterceptionYards", DisplayValue: strPtr("12.5")},
			},
		},
	})

	if len(stats.Offense) != len(offenseMetrics) {
		t.Fatalf("unexpected offense rows: %d", len(stats.Offense))
	}
	if len(stats.Defense) != len(defenseMetrics) {
		t.Fatalf("unexpected defense rows: %d", len(stats.Defense))
	}

	byLabel := make(map[string]string, len(stats.Offense))
	for _, line := range stats.Offense {
		byLabel[line.Label] = line.Value
	}
	if got := byLabel["Completion %"]; got != "64.2%" {
		t.Fatalf("completion pct=%q", got)
	}
	if got := byLabel["3rd Down %"]; got != team.Placeholder+"%" {
		t.Fatalf("missing percent row=%q, want placeholder with suffix", got)
	}
	if got := byLabel["QB Rating"]; got != "" {
		t.Fatalf("present empty display value=%q, want it kept", got)
	}
	if got := byLabel["Total Points"]; got != team.Placeholder {
		t.Fatalf("stat without display value=%q, want placeholder", got)
	}
	if got := byLabel["Sacks Allowed"]; got != "48" {
		t.Fatalf("sacks allowed=%q, want shared sacks value", got)
	}

	if got := stats.Defense[0]; got != (team.StatLine{Label: "Sacks", Value: "48"}) {
		t.Fatalf("unexpected first defense row: %+v", got)
	}
	if got := stats.Defense[4]; got != (team.StatLine{Label: "Interceptions", Value: "12.5"}) {
		t.Fatalf("interceptions row should read avgInterceptionYards: %+v", got)
	}
}

func TestBuildTeamStats_LaterCategoryWinsOnNameCollision(t *testing.T) {
	t.Parallel()

	stats := buildTeamStats([]ExternalStatCategory{
		{Name: "passing", Stats: []ExternalStat{{Name: "sacks", DisplayValue: strPtr("30")}}},
		{Name: "defensive", Stats: []ExternalStat{{Name: "sacks", DisplayValue: strPtr("51")}}},
	})

	if got := stats.Defense[0].Value; got != "51" {
		t.Fatalf("sacks=%q, want last occurrence", got)
	}
	if got := stats.Offense[10].Value; got != "51" {
		t.Fatalf("sacks allowed=%q, want last occurrence", got)
	}
}

func TestBuildTeamStats_EmptyInputGivesFullPlaceholderTable(t *testing.T) {
	t.Parallel()

	stats := buildTeamStats(nil)
	for _, line := range append(stats.Offense, stats.Defense...) {
		if line.Value != team.Placeholder && line.Value != team.Placeholder+"%" {
			t.Fatalf("row %q=%q, want placeholder", line.Label, line.Value)
		}
	}
}

func TestBuildPlayerLeaders_TakesFirstMatchPerAllowedCategory(t *testing.T) {
	t.Parallel()

	leaders := buildPlayerLeaders([]ExternalLeaderCategory{
		{
			Name:        "passingYards",
			DisplayName: "Passing Yards",
			Leaders: []ExternalLeader{
				{TeamID: "3", AthleteName: "Other QB", DisplayValue: "4500"},
				{TeamID: "5", AthleteName: "Starter", DisplayValue: "4000", HeadshotURL: "https://a.espncdn.com/starter.png"},
				{TeamID: "5", AthleteName: "Backup", DisplayValue: "3900"},
			},
		},
		{
			Name:        "kickReturnYards",
			DisplayName: "Kick Return Yards",
			Leaders:     []ExternalLeader{{TeamID: "5", AthleteName: "Returner", DisplayValue: "800"}},
		},
		{
			Name:        "sacks",
			DisplayName: "Sacks",
			Leaders:     []ExternalLeader{{TeamID: "8", AthleteName: "Edge", DisplayValue: "17"}},
		},
	}, "5")

	if len(leaders) != 1 {
		t.Fatalf("unexpected leader count: %d (%+v)", len(leaders), leaders)
	}
	want := team.PlayerLeader{
		Category:    "Passing Yards",
		PlayerName:  "Starter",
		Value:       "4000",
		HeadshotURL: "https://a.espncdn.com/starter.png",
	}
	if leaders[0] != want {
		t.Fatalf("leader=%+v, want %+v", leaders[0], want)
	}
}

func TestBuildTeamInfo_AppliesDefaults(t *testing.T) {
	t.Parallel()

	detail := buildTeamInfo(ExternalTeamInfo{
		ID:           "34",
		DisplayName:  "Expansion Club",
		Abbreviation: "XYZ",
		Venue:        ExternalVenue{FullName: "New Dome", Indoor: true},
	})

	if detail.Color != team.DefaultColor || detail.AlternateColor != team.DefaultAlternateColor {
		t.Fatalf("unexpected colors: %q/%q", detail.Color, detail.AlternateColor)
	}
	if detail.Venue.Opened != nil {
		t.Fatalf("expected no opened year for unknown abbreviation, got %d", *detail.Venue.Opened)
	}
	if detail.Venue.Surface != team.SurfaceTurf {
		t.Fatalf("surface=%q, want turf", detail.Venue.Surface)
	}
	if !detail.Venue.Indoor {
		t.Fatalf("expected indoor venue")
	}
	if detail.LogoURL != "" {
		t.Fatalf("logo=%q, want empty", detail.LogoURL)
	}
}

func TestBuildTeamInfo_KeepsPresentColors(t *testing.T) {
	t.Parallel()

	detail := buildTeamInfo(ExternalTeamInfo{
		Abbreviation:   "GB",
		Color:          strPtr("204e32"),
		AlternateColor: strPtr(""),
	})

	if detail.Color != "204e32" {
		t.Fatalf("color=%q, want upstream value", detail.Color)
	}
	if detail.AlternateColor != "" {
		t.Fatalf("alternate color=%q, want present empty value kept", detail.AlternateColor)
	}
}

func TestBuildRoster_CapitalizesUnitAndDefaultsJersey(t *testing.T) {
	t.Parallel()

	roster := buildRoster([]ExternalRosterGroup{
		{
			Position: "specialTeam",
			Players: []ExternalRosterPlayer{
				{DisplayName: "Long Snapper", Position: "Long Snapper"},
			},
		},
		{
			Position: "DEFENSE",
			Players: []ExternalRosterPlayer{
				{DisplayName: "Corner", Position: "Cornerback", Jersey: "24"},
			},
		},
	})

	if len(roster) != 2 {
		t.Fatalf("unexpected roster size: %d", len(roster))
	}
	if roster[0].Unit != "Specialteam" || roster[0].Jersey != team.Placeholder {
		t.Fatalf("unexpected first entry: %+v", roster[0])
	}
	if roster[1].Unit != "Defense" || roster[1].Jersey != "24" {
		t.Fatalf("unexpected second entry: %+v", roster[1])
	}
}

func TestRecordsByTeam_MissingStatsCountAsZero(t *testing.T) {
	t.Parallel()

	records := recordsByTeam([]ExternalStanding{
		{TeamID: "1", Stats: []ExternalStandingStat{{Name: "wins", Value: 3}}},
		{TeamID: "2", Stats: []ExternalStandingStat{{Name: "", Value: 9}, {Name: "ties", Value: 1}}},
	})

	if got := records["1"]; got != (team.Record{Wins: 3, WinPercent: 100}) {
		t.Fatalf("unexpected record for team 1: %+v", got)
	}
	if got := records["2"]; got != (team.Record{Ties: 1, WinPercent: 0}) {
		t.Fatalf("unexpected record for team 2: %+v", got)
	}
}
