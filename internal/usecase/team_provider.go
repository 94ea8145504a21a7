package usecase

import "context"

// TeamProvider reads league and team data from the upstream statistics API.
// Every error it returns is marked with ErrUpstream.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]ExternalTeam, error)
	FetchStandings(ctx context.Context) ([]ExternalStanding, error)
	FetchTeamInfo(ctx context.Context, teamID string) (ExternalTeamInfo, error)
	FetchTeamStatistics(ctx context.Context, teamID string) ([]ExternalStatCategory, error)
	FetchTeamRoster(ctx context.Context, teamID string) ([]ExternalRosterGroup, error)
	FetchLeagueLeaders(ctx context.Context) ([]ExternalLeaderCategory, error)
}

type ExternalTeam struct {
	ID           string
	Name         string
	Abbreviation string
	Location     string
	DisplayName  string
	LogoURLs     []string
}

type ExternalStanding struct {
	TeamID string
	Stats  []ExternalStandingStat
}

type ExternalStandingStat struct {
	Name  string
	Value float64
}

type ExternalTeamInfo struct {
	ID             string
	DisplayName    string
	Name           string
	Location       string
	Abbreviation   string
	// Colors are nil when upstream omits the key.
	Color          *string
	AlternateColor *string
	LogoURLs       []string
	Venue          ExternalVenue
}

type ExternalVenue struct {
	FullName string
	City     string
	State    string
	Grass    bool
	Indoor   bool
}

type ExternalStatCategory struct {
	Name  string
	Stats []ExternalStat
}

// ExternalStat is one team statistic. A nil DisplayValue means upstream omitted the key.
type ExternalStat struct {
	Name         string
	DisplayValue *string
}

type ExternalRosterGroup struct {
	Position string
	Players  []ExternalRosterPlayer
}

type ExternalRosterPlayer struct {
	DisplayName string
	Position    string
	Jersey      string
	HeadshotURL string
}

type ExternalLeaderCategory struct {
	Name        string
	DisplayName string
	Leaders     []ExternalLeader
}

type ExternalLeader struct {
	TeamID       string
	AthleteName  string
	DisplayValue string
	HeadshotURL  string
}
