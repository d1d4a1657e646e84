package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hiring-copilot/internal/middleware"
	"hiring-copilot/internal/repositories"
)

type ReportHandler struct {
	reportRepo repositories.ReportRepository
}

func NewReportHandler(reportRepo repositories.ReportRepository) *ReportHandler {
	return &ReportHandler{
		reportRepo: reportRepo,
	}
}

// HandleListReports handles GET /reports: the caller's persisted analysis
// reports, newest first.
func (h *ReportHandler) HandleListReports(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "could not validate credentials",
		})
	}

	reports, err := h.reportRepo.FindByUser(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list reports",
		})
	}

	return c.JSON(reports)
}
