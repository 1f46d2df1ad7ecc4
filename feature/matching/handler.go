package matching

import (
	"errors"

	"commerce-linker/core/logger"
	"commerce-linker/core/reconcile"
	"commerce-linker/core/validation"
	"commerce-linker/feature/dataset"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultSample = 10
	defaultLimit  = 100
)

// MatchQuery filters the matches of the last run.
type MatchQuery struct {
	Type  string `json:"type" query:"type" validate:"omitempty,oneof=exact_email geographic_behavioral timing_pattern"`
	Limit int    `json:"limit" query:"limit" validate:"gte=0,lte=10000"`
}

// Handler handles HTTP requests for matching.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the matching routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/matching")
	group.Post("/run", h.HandleRun)
	group.Get("/last", h.HandleLast)
	group.Get("/matches", h.HandleMatches)
	group.Get("/runs", h.HandleRuns)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrNoDataset), errors.Is(err, ErrNoRun):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleRun runs the matcher on the latest dataset.
// @Summary Run Matcher
// @Description Links the sessions of the latest dataset to its accounts through exact email, geographic/behavioral and timing passes. Results are cached per dataset.
// @Tags matching
// @Produce json
// @Param sample query int false "Number of sample matches (default 10)"
// @Success 200 {object} Report
// @Failure 404 {object} map[string]string "No dataset generated yet"
// @Router /matching/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, err := h.service.Run(c.UserContext())
	if err != nil {
		l.Error("Matcher run failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(NewReport(run, c.QueryInt("sample", defaultSample)))
}

// HandleLast returns the report of the last run.
// @Summary Last Match Run
// @Description Returns the aggregates of the most recent matcher run.
// @Tags matching
// @Produce json
// @Success 200 {object} Report
// @Failure 404 {object} map[string]string "Matcher has not run yet"
// @Router /matching/last [get]
func (h *Handler) HandleLast(c *fiber.Ctx) error {
	run, err := h.service.Last()
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(NewReport(run, c.QueryInt("sample", defaultSample)))
}

// HandleMatches lists matches of the last run.
// @Summary List Matches
// @Description Lists the matches of the most recent run, optionally filtered by type.
// @Tags matching
// @Produce json
// @Param type query string false "exact_email, geographic_behavioral or timing_pattern"
// @Param limit query int false "Maximum number of matches (default 100)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 404 {object} map[string]string "Matcher has not run yet"
// @Router /matching/matches [get]
func (h *Handler) HandleMatches(c *fiber.Ctx) error {
	q := MatchQuery{Limit: defaultLimit}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query"})
	}
	if err := validation.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "details": err})
	}

	matches, err := h.service.Matches(reconcile.MatchType(q.Type), q.Limit)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(matches), "matches": matches})
}

// HandleRuns lists persisted run summaries.
// @Summary Match Run History
// @Description Lists persisted matcher run summaries, newest first. Empty without a database.
// @Tags matching
// @Produce json
// @Param limit query int false "Maximum number of runs (default 20)"
// @Success 200 {object} map[string]interface{}
// @Router /matching/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.History(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		l.Warn("Listing match runs failed", zap.Error(err))
		runs = []MatchRun{}
	}
	return c.JSON(fiber.Map{"runs": runs})
}
