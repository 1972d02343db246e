package handlers

import (
	"github.com/gofiber/fiber/v2"

	"timetrack-service/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary returns grouped totals over closed entries
// @Summary Report summary
// @Description Per-user and per-project totals (minutes, hours, entry count) over closed entries in the optional date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Inclusive lower bound on startTime"
// @Param endDate query string false "Inclusive upper bound on startTime"
// @Success 200 {object} models.SummaryResponse "Summary"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
	}

	summary, err := h.reportService.Summary(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
