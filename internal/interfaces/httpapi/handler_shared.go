package httpapi

import "github.com/riskibarqy/gridiron-teams/internal/domain/team"

type teamSummaryDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Abbrev      string  `json:"abbrev"`
	City        string  `json:"city"`
	DisplayName string  `json:"display_name"`
	LogoURL     string  `json:"logo_url"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	WinPct      float64 `json:"win_pct"`
}

type teamDetailDTO struct {
	ID            string            `json:"id"`
	DisplayName   string            `json:"display_name"`
	Name          string            `json:"name"`
	City          string            `json:"city"`
	Abbrev        string            `json:"abbrev"`
	Color         string            `json:"color"`
	AltColor      string            `json:"alt_color"`
	LogoURL       string            `json:"logo_url"`
	VenueName     string            `json:"venue_name"`
	VenueCity     string            `json:"venue_city"`
	VenueState    string            `json:"venue_state"`
	VenueOpened   *int              `json:"venue_opened"`
	VenueSurface  string            `json:"venue_surface"`
	VenueIndoor   bool              `json:"venue_indoor"`
	TeamStats     teamStatsDTO      `json:"team_stats"`
	PlayerLeaders []playerLeaderDTO `json:"player_leaders"`
	Roster        []rosterEntryDTO  `json:"roster"`
}

type teamStatsDTO struct {
	Offense []statLineDTO `json:"offense"`
	Defense []statLineDTO `json:"defense"`
}

type statLineDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type playerLeaderDTO struct {
	Category    string `json:"category"`
	PlayerName  string `json:"player_name"`
	Value       string `json:"value"`
	HeadshotURL string `json:"headshot_url"`
}

type rosterEntryDTO struct {
	Unit        string `json:"unit"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Jersey      string `json:"jersey"`
	HeadshotURL string `json:"headshot_url"`
}

func teamSummaryToDTO(item team.Summary) teamSummaryDTO {
	return teamSummaryDTO{
		ID:          item.ID,
		Name:        item.Name,
		Abbrev:      item.Abbreviation,
		City:        item.City,
		DisplayName: item.DisplayName,
		LogoURL:     item.LogoURL,
		Wins:        item.Wins,
		Losses:      item.Losses,
		Ties:        item.Ties,
		WinPct:      item.WinPercent,
	}
}

func teamDetailToDTO(item team.Detail) teamDetailDTO {
	leaders := make([]playerLeaderDTO, 0, len(item.PlayerLeaders))
	for _, leader := range item.PlayerLeaders {
		leaders = append(leaders, playerLeaderDTO{
			Category:    leader.Category,
			PlayerName:  leader.PlayerName,
			Value:       leader.Value,
			HeadshotURL: leader.HeadshotURL,
		})
	}

	roster := make([]rosterEntryDTO, 0, len(item.Roster))
	for _, entry := range item.Roster {
		roster = append(roster, rosterEntryDTO{
			Unit:        entry.Unit,
			Name:        entry.Name,
			Position:    entry.Position,
			Jersey:      entry.Jersey,
			HeadshotURL: entry.HeadshotURL,
		})
	}

	return teamDetailDTO{
		ID:           item.ID,
		DisplayName:  item.DisplayName,
		Name:         item.Name,
		City:         item.City,
		Abbrev:       item.Abbreviation,
		Color:        item.Color,
		AltColor:     item.AlternateColor,
		LogoURL:      item.LogoURL,
		VenueName:    item.Venue.Name,
		VenueCity:    item.Venue.City,
		VenueState:   item.Venue.State,
		VenueOpened:  item.Venue.Opened,
		VenueSurface: item.Venue.Surface,
		VenueIndoor:  item.Venue.Indoor,
		TeamStats: teamStatsDTO{
			Offense: statLinesToDTO(item.TeamStats.Offense),
			Defense: statLinesToDTO(item.TeamStats.Defense),
		},
		PlayerLeaders: leaders,
		Roster:        roster,
	}
}

func statLinesToDTO(lines []team.StatLine) []statLineDTO {
	out := make([]statLineDTO, 0, len(lines))
	for _, line := range lines {
		out = append(out, statLineDTO{Label: line.Label, Value: line.Value})
	}
	return out
}
