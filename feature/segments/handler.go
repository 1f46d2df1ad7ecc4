package segments

import (
	"commerce-linker/core/logger"
	"commerce-linker/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for segments.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the segment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/segments")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id/analytics", h.HandleAnalytics)
}

// HandleCreate creates an audience segment.
// @Summary Create Segment
// @Description Creates an audience segment and estimates its reach. The segment is returned even when it could not be stored.
// @Tags segments
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Segment criteria"
// @Success 200 {object} Segment
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /segments [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "details": err})
	}

	seg := h.service.Create(c.UserContext(), req)
	l.Info("Segment created",
		zap.String("segment_id", seg.SegmentID),
		zap.Int("estimated_reach", seg.EstimatedReach))
	return c.JSON(seg)
}

// HandleList lists the newest segments.
// @Summary List Segments
// @Description Returns the 20 most recently created segments.
// @Tags segments
// @Produce json
// @Success 200 {array} Segment
// @Router /segments [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.UserContext()))
}

// HandleAnalytics returns observed and forecast impressions of a segment.
// @Summary Segment Analytics
// @Description Returns 30 days of observed impressions with engagement minutes and device mix, and a 30 day impression forecast.
// @Tags segments
// @Produce json
// @Param id path string true "Segment ID"
// @Success 200 {object} Analytics
// @Router /segments/{id}/analytics [get]
func (h *Handler) HandleAnalytics(c *fiber.Ctx) error {
	return c.JSON(h.service.Analytics(c.UserContext(), c.Params("id")))
}
