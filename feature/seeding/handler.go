package seeding

import (
	"bytes"
	"errors"

	"bulk-seeder/core/logger"
	"bulk-seeder/core/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for seeding runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the seeding routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/seed")
	group.Post("/run", h.HandleRun)
	group.Get("/report", h.HandleReport)
	group.Get("/report/table", h.HandleReportTable)
	group.Get("/check", h.HandleCheck)
}

// HandleRun runs the seeding plan.
// @Summary Run Seeding Plan
// @Description Runs every unit of the plan in creation order and returns the audit log. Unit failures are reported per unit and do not fail the request.
// @Tags seed
// @Produce json
// @Success 200 {object} Run "Run report"
// @Failure 409 {object} map[string]string "Run already in progress"
// @Failure 422 {object} map[string]string "Malformed plan"
// @Router /seed/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering seeding run")

	run, err := h.service.InsertData(c.UserContext())
	if err != nil {
		if errors.Is(err, ErrRunInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Seeding run failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(run)
}

// HandleReport returns the last run.
// @Summary Last Run Report
// @Description Returns the audit log of the most recent seeding run.
// @Tags seed
// @Produce json
// @Success 200 {object} Run "Run report"
// @Failure 404 {object} map[string]string "No run yet"
// @Router /seed/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	run, err := h.service.LastRun()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}

// HandleReportTable returns the last run as a plain-text table.
// @Summary Last Run Table
// @Description Renders the audit log of the most recent run as the console table.
// @Tags seed
// @Produce plain
// @Param light query boolean false "Render without box-drawing borders"
// @Success 200 {string} string "Table"
// @Failure 404 {object} map[string]string "No run yet"
// @Router /seed/report/table [get]
func (h *Handler) HandleReportTable(c *fiber.Ctx) error {
	var buf bytes.Buffer
	opts := report.Options{Light: c.QueryBool("light", false)}
	if err := h.service.ShowSummary(&buf, opts); err != nil {
		if errors.Is(err, ErrNoRun) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(buf.Bytes())
}

// HandleCheck inspects the plan without inserting anything.
// @Summary Check Seeding Plan
// @Description Compiles schemas, reads sources, compares record fields with table columns and lints reference ordering.
// @Tags seed
// @Produce json
// @Success 200 {object} CheckReport "Check report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /seed/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rep, err := h.service.Check(c.UserContext())
	if err != nil {
		l.Error("Plan check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !rep.OK {
		l.Warn("Plan check found problems", zap.Int("issues", len(rep.Issues)))
	}
	return c.JSON(rep)
}
