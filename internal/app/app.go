package app

import (
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gridiron-teams/external/espn"
	"github.com/riskibarqy/gridiron-teams/internal/config"
	"github.com/riskibarqy/gridiron-teams/internal/interfaces/httpapi"
	"github.com/riskibarqy/gridiron-teams/internal/platform/logging"
	"github.com/riskibarqy/gridiron-teams/internal/usecase"
)

// NewHTTPServer wires the ESPN client, team service and router into a server
// listening on cfg.HTTPAddr.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	espnClient := espn.NewClient(espn.ClientConfig{
		TeamsURL:       cfg.ESPN.TeamsURL,
		StandingsURL:   cfg.ESPN.StandingsURL,
		LeagueStatsURL: cfg.ESPN.LeagueStatsURL,
		Timeout:        cfg.ESPN.Timeout,
		Logger:         logger.With("component", "espn"),
		CircuitBreaker: cfg.ESPN.CircuitBreaker,
	})

	teamSvc := usecase.NewTeamService(espnClient, logger)
	handler := httpapi.NewHandler(teamSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
