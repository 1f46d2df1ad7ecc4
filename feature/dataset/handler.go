package dataset

import (
	"errors"

	"commerce-linker/core/logger"
	"commerce-linker/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for datasets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dataset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/datasets")
	group.Post("/", h.HandleGenerate)
	group.Get("/latest", h.HandleLatest)
	group.Get("/schema", h.HandleSchema)
	group.Get("/exports", h.HandleListExports)
	group.Get("/exports/:file", h.HandleDownloadExport)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoDataset):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUnknownFile):
		return fiber.StatusBadRequest
	case IsUnavailable(err):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleGenerate generates a new dataset.
// @Summary Generate Dataset
// @Description Generates customer accounts and website sessions. Sizes default to the configured values and are clamped to the configured caps. Optionally persists the rows and exports CSV files to the bucket.
// @Tags datasets
// @Accept json
// @Produce json
// @Param request body GenerateRequest false "Generation options"
// @Success 200 {object} GenerateResult
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /datasets [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "details": err})
	}

	res, err := h.service.Generate(c.UserContext(), req)
	if err != nil {
		l.Error("Dataset generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// HandleLatest returns the summaries of the latest dataset.
// @Summary Latest Dataset
// @Description Returns the id, seed and population summaries of the most recently generated dataset.
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "No dataset generated yet"
// @Router /datasets/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	ds, err := h.service.Latest()
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"dataset": ds,
		"summary": Summarize(ds),
	})
}

// HandleSchema checks the bronze tables.
// @Summary Check Dataset Schema
// @Description Compares the persisted account and session tables with the expected columns.
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /datasets/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tables, err := h.service.Schema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	ok := true
	for _, t := range tables {
		ok = ok && t.OK
	}
	return c.JSON(fiber.Map{"ok": ok, "tables": tables})
}

// HandleListExports lists the uploaded CSV files of the latest dataset.
// @Summary List Exports
// @Description Lists the object keys exported for the latest dataset.
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "No dataset generated yet"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /datasets/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	keys, err := h.service.Exports(c.UserContext())
	if err != nil {
		l.Error("Listing exports failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(fiber.Map{"keys": keys})
}

// HandleDownloadExport streams one exported CSV file.
// @Summary Download Export
// @Description Streams an exported CSV file of the latest dataset from the bucket.
// @Tags datasets
// @Produce text/csv
// @Param file path string true "customer_accounts_dataset.csv or customer_website_traffic_data.csv"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unknown file"
// @Failure 404 {object} map[string]string "No dataset generated yet"
// @Router /datasets/exports/{file} [get]
func (h *Handler) HandleDownloadExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	file := c.Params("file")

	rc, err := h.service.OpenExport(c.UserContext(), file)
	if err != nil {
		l.Error("Opening export failed", zap.String("file", file), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file+`"`)
	return c.SendStream(rc)
}
