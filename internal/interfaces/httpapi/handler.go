package httpapi

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/gridiron-teams/internal/platform/logging"
	"github.com/riskibarqy/gridiron-teams/internal/usecase"
)

type Handler struct {
	teamService *usecase.TeamService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(teamService *usecase.TeamService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService: teamService,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return crerr.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}

// ESPN team ids are short decimal strings ("1" .. "34").
type getTeamDetailRequest struct {
	TeamID string `validate:"required,number,max=8"`
}
