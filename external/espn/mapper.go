package espn

import "github.com/riskibarqy/gridiron-teams/internal/usecase"

func mapTeams(env teamsEnvelope) []usecase.ExternalTeam {
	if len(env.Sports) == 0 || len(env.Sports[0].Leagues) == 0 {
		return []usecase.ExternalTeam{}
	}

	entries := env.Sports[0].Leagues[0].Teams
	out := make([]usecase.ExternalTeam, 0, len(entries))
	for _, entry := range entries {
		item := entry.Team
		out = append(out, usecase.ExternalTeam{
			ID:           string(item.ID),
			Name:         item.Name,
			Abbreviation: item.Abbreviation,
			Location:     item.Location,
			DisplayName:  item.DisplayName,
			LogoURLs:     logoURLs(item.Logos),
		})
	}
	return out
}

func mapStandings(env standingsEnvelope) []usecase.ExternalStanding {
	out := make([]usecase.ExternalStanding, 0, 32)
	for _, group := range env.Children {
		for _, entry := range group.Standings.Entries {
			stats := make([]usecase.ExternalStandingStat, 0, len(entry.Stats))
			for _, stat := range entry.Stats {
				stats = append(stats, usecase.ExternalStandingStat{
					Name:  stat.Name,
					Value: float64(stat.Value),
				})
			}
			out = append(out, usecase.ExternalStanding{
				TeamID: string(entry.Team.ID),
				Stats:  stats,
			})
		}
	}
	return out
}

func mapTeamInfo(item teamPayload) usecase.ExternalTeamInfo {
	venue := item.Franchise.Venue
	return usecase.ExternalTeamInfo{
		ID:             string(item.ID),
		DisplayName:    item.DisplayName,
		Name:           item.Name,
		Location:       item.Location,
		Abbreviation:   item.Abbreviation,
		Color:          item.Color,
		AlternateColor: item.AlternateColor,
		LogoURLs:       logoURLs(item.Logos),
		Venue: usecase.ExternalVenue{
			FullName: venue.FullName,
			City:     venue.Address.City,
			State:    venue.Address.State,
			Grass:    venue.Grass,
			Indoor:   venue.Indoor,
		},
	}
}

func mapStatCategories(env teamStatisticsEnvelope) []usecase.ExternalStatCategory {
	categories := env.Results.Stats.Categories
	out := make([]usecase.ExternalStatCategory, 0, len(categories))
	for _, category := range categories {
		stats := make([]usecase.ExternalStat, 0, len(category.Stats))
		for _, stat := range category.Stats {
			stats = append(stats, usecase.ExternalStat{
				Name:         stat.Name,
				DisplayValue: optionalString(stat.DisplayValue),
			})
		}
		out = append(out, usecase.ExternalStatCategory{Name: category.Name, Stats: stats})
	}
	return out
}

func mapRoster(env rosterEnvelope) []usecase.ExternalRosterGroup {
	out := make([]usecase.ExternalRosterGroup, 0, len(env.Athletes))
	for _, group := range env.Athletes {
		players := make([]usecase.ExternalRosterPlayer, 0, len(group.Items))
		for _, player := range group.Items {
			players = append(players, usecase.ExternalRosterPlayer{
				DisplayName: player.DisplayName,
				Position:    player.Position.DisplayName,
				Jersey:      string(player.Jersey),
				HeadshotURL: player.Headshot.Href,
			})
		}
		out = append(out, usecase.ExternalRosterGroup{Position: group.Position, Players: players})
	}
	return out
}

func mapLeaderCategories(env leagueStatisticsEnvelope) []usecase.ExternalLeaderCategory {
	categories := env.Stats.Categories
	out := make([]usecase.ExternalLeaderCategory, 0, len(categories))
	for _, category := range categories {
		leaders := make([]usecase.ExternalLeader, 0, len(category.Leaders))
		for _, leader := range category.Leaders {
			leaders = append(leaders, usecase.ExternalLeader{
				TeamID:       string(leader.Team.ID),
				AthleteName:  leader.Athlete.DisplayName,
				DisplayValue: string(leader.DisplayValue),
				HeadshotURL:  leader.Athlete.Headshot.Href,
			})
		}
		out = append(out, usecase.ExternalLeaderCategory{
			Name:        category.Name,
			DisplayName: category.DisplayName,
			Leaders:     leaders,
		})
	}
	return out
}

func logoURLs(logos []imageRef) []string {
	out := make([]string, 0, len(logos))
	for _, logo := range logos {
		out = append(out, logo.Href)
	}
	return out
}

func optionalString(value *flexString) *string {
	if value == nil {
		return nil
	}
	text := string(*value)
	return &text
}
