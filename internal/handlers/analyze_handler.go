package handlers

import (
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"hiring-copilot/internal/middleware"
	"hiring-copilot/internal/models"
	"hiring-copilot/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze-resumes. The response is always a JSON
// array with one entry per uploaded file, best score first; files that fail
// come back as zero-score error entries, never as an HTTP error.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "could not validate credentials",
		})
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	fileHeaders := form.File["resume_files"]
	if len(fileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "at least one resume file is required",
		})
	}

	files := make([]models.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		content, err := readUpload(fh)
		if err != nil {
			// Unreadable upload: keep its slot in the batch as an error entry.
			log.Printf("❌ Failed to read upload %s: %v\n", fh.Filename, err)
			content = nil
		}
		files = append(files, models.UploadedFile{
			Filename: fh.Filename,
			Content:  content,
		})
	}

	results := h.analyzer.Analyze(c.Context(), jobDescription, files, user.ID)

	return c.JSON(results)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
