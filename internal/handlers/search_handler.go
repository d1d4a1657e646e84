package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hiring-copilot/internal/middleware"
	"hiring-copilot/internal/models"
	"hiring-copilot/internal/services"
)

const defaultSearchLimit = 10

type SearchHandler struct {
	index services.CandidateIndex
}

func NewSearchHandler(index services.CandidateIndex) *SearchHandler {
	return &SearchHandler{
		index: index,
	}
}

// HandleSearch handles POST /search-candidates: find the caller's previously
// analyzed candidates most similar to a query (typically a new job
// description).
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "could not validate credentials",
		})
	}

	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query is required",
		})
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultSearchLimit
	}

	matches, err := h.index.SearchCandidates(c.Context(), req.Query, user.ID, limit)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "candidate search failed",
		})
	}

	if matches == nil {
		matches = []models.SearchMatch{}
	}

	return c.JSON(matches)
}
