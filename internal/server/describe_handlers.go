package server

import (
	"encoding/base64"
	"strings"

	"plantify/internal/models"
	"plantify/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// DescribeImage handles POST /api/describe. The request carries the
// image as base64 (optionally a data URL); the response is either a
// description or an error, never both.
func (s *Server) DescribeImage(c *fiber.Ctx) error {
	if s.describer == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			&models.AppError{Code: "UNAVAILABLE", Message: "Description service is not configured"})
	}

	var req struct {
		ImageBase64 string `json:"imageBase64"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ImageBase64 == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("imageBase64 is required"))
	}

	payload := req.ImageBase64
	mimeType := "image/jpeg"
	if strings.HasPrefix(payload, "data:") {
		// data:image/png;base64,AAAA...
		rest := strings.TrimPrefix(payload, "data:")
		if idx := strings.Index(rest, ";base64,"); idx >= 0 {
			mimeType = rest[:idx]
			payload = rest[idx+len(";base64,"):]
		}
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid base64 image data"))
	}

	description, err := s.describer.Describe(c.UserContext(), image, mimeType)
	if err != nil {
		observability.DescribeRequests.WithLabelValues("failed").Inc()
		return models.RespondWithError(c, fiber.StatusBadGateway,
			&models.AppError{Code: "UPSTREAM_ERROR", Message: "Could not generate description", Err: err})
	}
	observability.DescribeRequests.WithLabelValues("ok").Inc()

	return c.JSON(fiber.Map{"description": description})
}
