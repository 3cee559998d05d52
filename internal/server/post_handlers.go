package server

import (
	"io"

	"plantify/internal/models"
	"plantify/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.postService.GetPostDetail(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	if userID, ok := s.optionalUserID(c); ok {
		decorated := s.cards.Decorate([]service.FeedItem{detail.Post}, userID)
		detail.Post = decorated[0]
	}

	return c.JSON(detail)
}

// CreatePost handles POST /api/posts (multipart form: image, plant_name,
// description)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:      userID,
		PlantName:   c.FormValue("plant_name"),
		Description: c.FormValue("description"),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}
