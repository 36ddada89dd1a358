package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	storageService  services.StorageService
	selectExtractor services.ExtractorSelector
	analyzerService services.AnalyzerService
	maxFileSize     int64
	retainUploads   bool
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	selectExtractor services.ExtractorSelector,
	analyzerService services.AnalyzerService,
	maxFileSize int64,
	retainUploads bool,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService:  storageService,
		selectExtractor: selectExtractor,
		analyzerService: analyzerService,
		maxFileSize:     maxFileSize,
		retainUploads:   retainUploads,
	}
}

// HandleAnalyze handles POST /analyze. Validation short-circuits on the
// first failure; nothing is retried.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Empty file name",
		})
	}

	extractor, err := h.selectExtractor(file.Filename)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file format",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to dispatch resume file: %v", err),
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := c.FormValue("job_description")

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	// The stored file only exists for this request unless retention is
	// explicitly configured.
	if !h.retainUploads {
		defer func() {
			if err := h.storageService.DeleteFile(filename); err != nil {
				log.Printf("⚠️  Failed to clean up upload %s: %v\n", filename, err)
			}
		}()
	}

	resumeText, err := extractor.ExtractText(filePath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract resume text: %v", err),
		})
	}

	result := h.analyzerService.Analyze(resumeText, jobDescription)

	return c.JSON(result)
}
