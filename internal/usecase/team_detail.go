package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/gridiron-teams/internal/domain/team"
)

type statMetric struct {
	label   string
	name    string
	percent bool
}

var offenseMetrics = []statMetric{
	{label: "Points Per Game", name: "totalPointsPerGame"},
	{label: "Total Points", name: "totalPoints"},
	{label: "Pass Yards/Game", name: "netPassingYardsPerGame"},
	{label: "Rush Yards/Game", name: "rushingYardsPerGame"},
	{label: "Total Yards/Game", name: "yardsPerGame"},
	{label: "Passing TDs", name: "passingTouchdowns"},
	{label: "Rushing TDs", name: "rushingTouchdowns"},
	{label: "Completion %", name: "completionPct", percent: true},
	{label: "Interceptions Thrown", name: "interceptions"},
	{label: "QB Rating", name: "QBRating"},
	{label: "Sacks Allowed", name: "sacks"},
	{label: "3rd Down %", name: "thirdDownConvPct", percent: true},
}

// The "Interceptions" row reads avgInterceptionYards; pages already depend on that value.
var defenseMetrics = []statMetric{
	{label: "Sacks", name: "sacks"},
	{label: "Total Tackles", name: "totalTackles"},
	{label: "Tackles For Loss", name: "tacklesForLoss"},
	{label: "Passes Defended", name: "passesDefended"},
	{label: "Interceptions", name: "avgInterceptionYards"},
}

func buildTeamInfo(info ExternalTeamInfo) team.Detail {
	surface := team.SurfaceTurf
	if info.Venue.Grass {
		surface = team.SurfaceGrass
	}

	return team.Detail{
		ID:             info.ID,
		DisplayName:    info.DisplayName,
		Name:           info.Name,
		City:           info.Location,
		Abbreviation:   info.Abbreviation,
		Color:          valueOr(info.Color, team.DefaultColor),
		AlternateColor: valueOr(info.AlternateColor, team.DefaultAlternateColor),
		LogoURL:        firstLogo(info.LogoURLs),
		Venue: team.Venue{
			Name:    info.Venue.FullName,
			City:    info.Venue.City,
			State:   info.Venue.State,
			Opened:  team.StadiumOpenedYear(info.Abbreviation),
			Surface: surface,
			Indoor:  info.Venue.Indoor,
		},
	}
}

func buildTeamStats(categories []ExternalStatCategory) team.StatGroups {
	byName := make(map[string]ExternalStat, 64)
	for _, category := range categories {
		for _, stat := range category.Stats {
			if stat.Name == "" {
				continue
			}
			byName[stat.Name] = stat
		}
	}

	return team.StatGroups{
		Offense: statLines(offenseMetrics, byName),
		Defense: statLines(defenseMetrics, byName),
	}
}

func statLines(metrics []statMetric, byName map[string]ExternalStat) []team.StatLine {
	out := make([]team.StatLine, 0, len(metrics))
	for _, metric := range metrics {
		value := team.Placeholder
		if stat, ok := byName[metric.name]; ok {
			value = valueOr(stat.DisplayValue, team.Placeholder)
		}
		// Percent rows keep the suffix even on the placeholder ("—%").
		if metric.percent {
			value += "%"
		}
		out = append(out, team.StatLine{Label: metric.label, Value: value})
	}
	return out
}

// buildPlayerLeaders takes the first leader of teamID in each allowlisted category.
// Upstream leader lists are rank-ordered, so the first match is the team's top player.
func buildPlayerLeaders(categories []ExternalLeaderCategory, teamID string) []team.PlayerLeader {
	out := make([]team.PlayerLeader, 0, len(categories))
	for _, category := range categories {
		if !team.IsLeaderCategory(category.Name) {
			continue
		}
		for _, leader := range category.Leaders {
			if leader.TeamID != teamID {
				continue
			}
			out = append(out, team.PlayerLeader{
				Category:    category.DisplayName,
				PlayerName:  leader.AthleteName,
				Value:       leader.DisplayValue,
				HeadshotURL: leader.HeadshotURL,
			})
			break
		}
	}
	return out
}

func buildRoster(groups []ExternalRosterGroup) []team.RosterEntry {
	out := make([]team.RosterEntry, 0, 64)
	for _, group := range groups {
		unit := capitalize(group.Position)
		for _, player := range group.Players {
			out = append(out, team.RosterEntry{
				Unit:        unit,
				Name:        player.DisplayName,
				Position:    player.Position,
				Jersey:      firstNonEmpty(player.Jersey, team.Placeholder),
				HeadshotURL: player.HeadshotURL,
			})
		}
	}
	return out
}

func firstLogo(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if item != "" {
			return item
		}
	}
	return ""
}

// valueOr falls back only when upstream omitted the key; a present "" is kept.
func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

// capitalize upper-cases the first letter and lower-cases the rest ("OFFENSE" -> "Offense").
func capitalize(value string) string {
	if value == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + strings.ToLower(value[size:])
}
