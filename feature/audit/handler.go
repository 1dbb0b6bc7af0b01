package audit

import (
	"errors"

	"inventory-auditor/core/ledger"
	"inventory-auditor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Post("/run", h.HandleRun)
	group.Get("/preview", h.HandlePreview)
	group.Get("/summary", h.HandleSummary)
}

// HandleRun executes a full audit and uploads the report.
// @Summary Run Audit
// @Description Reconcile the FBA and storefront ledgers, upload the CSV report and return the summary.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} Result "Audit Result"
// @Failure 422 {object} map[string]string "Malformed Ledger Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Run(c.Context())
	if err != nil {
		return handleError(c, l, "Audit run failed", err)
	}
	return c.JSON(result)
}

// HandlePreview reconciles without writing and returns the report rows.
// @Summary Preview Audit
// @Description Reconcile the FBA and storefront ledgers and return the rows without uploading a report.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {array} reconcile.Row "Report Rows"
// @Failure 422 {object} map[string]string "Malformed Ledger Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.Preview(c.Context())
	if err != nil {
		return handleError(c, l, "Audit preview failed", err)
	}
	return c.JSON(rows)
}

// HandleSummary reconciles without writing and returns the counts.
// @Summary Audit Summary
// @Description Reconcile the FBA and storefront ledgers and return the per-status counts.
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} reconcile.Summary "Summary Counts"
// @Failure 422 {object} map[string]string "Malformed Ledger Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		return handleError(c, l, "Audit summary failed", err)
	}
	return c.JSON(summary)
}

// handleError maps malformed ledger input to 422 so callers can tell a
// bad ledger from an infrastructure failure.
func handleError(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	var malformed *ledger.MalformedInputError
	if errors.As(err, &malformed) {
		l.Warn(msg, zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
