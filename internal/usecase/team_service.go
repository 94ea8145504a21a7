package usecase

import (
	"context"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gridiron-teams/internal/domain/team"
	"github.com/riskibarqy/gridiron-teams/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

type TeamService struct {
	provider TeamProvider
	logger   *logging.Logger
}

func NewTeamService(provider TeamProvider, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		provider: provider,
		logger:   logger,
	}
}

// ListTeams returns every league team joined with its standings record, sorted by display name.
// Both upstream calls must succeed.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	var (
		teams     []ExternalTeam
		standings []ExternalStanding
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.provider.FetchTeams(ctx)
		if err != nil {
			return crerr.Wrap(err, "fetch teams")
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.provider.FetchStandings(ctx)
		if err != nil {
			return crerr.Wrap(err, "fetch standings")
		}
		standings = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return mergeTeamSummaries(teams, recordsByTeam(standings)), nil
}

// GetTeamDetail fans out the four detail calls at once. Team info and statistics are
// critical; roster and league leaders degrade to empty lists when they fail.
func (s *TeamService) GetTeamDetail(ctx context.Context, teamID string) (team.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamDetail")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Detail{}, crerr.Wrap(ErrInvalidInput, "team id is required")
	}

	optionalCtx, cancelOptional := context.WithCancel(ctx)
	defer cancelOptional()

	var (
		roster     []ExternalRosterGroup
		rosterErr  error
		leaders    []ExternalLeaderCategory
		leadersErr error
		optional   conc.WaitGroup
	)
	optional.Go(func() {
		roster, rosterErr = s.provider.FetchTeamRoster(optionalCtx, teamID)
	})
	optional.Go(func() {
		leaders, leadersErr = s.provider.FetchLeagueLeaders(optionalCtx)
	})

	var (
		info  ExternalTeamInfo
		stats []ExternalStatCategory
	)
	critical := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	critical.Go(func(ctx context.Context) error {
		item, err := s.provider.FetchTeamInfo(ctx, teamID)
		if err != nil {
			return crerr.Wrapf(err, "fetch team info team_id=%s", teamID)
		}
		info = item
		return nil
	})
	critical.Go(func(ctx context.Context) error {
		items, err := s.provider.FetchTeamStatistics(ctx, teamID)
		if err != nil {
			return crerr.Wrapf(err, "fetch team statistics team_id=%s", teamID)
		}
		stats = items
		return nil
	})

	if err := critical.Wait(); err != nil {
		cancelOptional()
		optional.Wait()
		return team.Detail{}, err
	}
	optional.Wait()

	detail := buildTeamInfo(info)
	detail.TeamStats = buildTeamStats(stats)

	detail.PlayerLeaders = []team.PlayerLeader{}
	if leadersErr != nil {
		s.logger.WarnContext(ctx, "league leaders unavailable, continuing without player leaders", "team_id", teamID, "error", leadersErr)
	} else {
		detail.PlayerLeaders = buildPlayerLeaders(leaders, teamID)
	}

	detail.Roster = []team.RosterEntry{}
	if rosterErr != nil {
		s.logger.WarnContext(ctx, "team roster unavailable, continuing without roster", "team_id", teamID, "error", rosterErr)
	} else {
		detail.Roster = buildRoster(roster)
	}

	return detail, nil
}

func recordsByTeam(standings []ExternalStanding) map[string]team.Record {
	out := make(map[string]team.Record, len(standings))
	for _, entry := range standings {
		stats := make(map[string]float64, len(entry.Stats))
		for _, stat := range entry.Stats {
			if stat.Name == "" {
				continue
			}
			stats[stat.Name] = stat.Value
		}
		out[entry.TeamID] = team.NewRecord(
			int(stats["wins"]),
			int(stats["losses"]),
			int(stats["ties"]),
		)
	}
	return out
}

func mergeTeamSummaries(teams []ExternalTeam, records map[string]team.Record) []team.Summary {
	out := make([]team.Summary, 0, len(teams))
	for _, item := range teams {
		out = append(out, team.Summary{
			ID:           item.ID,
			Name:         item.Name,
			Abbreviation: item.Abbreviation,
			City:         item.Location,
			DisplayName:  item.DisplayName,
			LogoURL:      firstLogo(item.LogoURLs),
			Record:       records[item.ID],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayName < out[j].DisplayName
	})
	return out
}
