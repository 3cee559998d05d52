package server

import (
	"plantify/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/posts/:id/like. The flag lives only in
// this process; stored like counts are not modified.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if !s.postExists(c, id) {
		return nil
	}
	return c.JSON(s.cards.ToggleLike(userID, id))
}

// ToggleFollow handles POST /api/posts/:id/follow.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if !s.postExists(c, id) {
		return nil
	}
	return c.JSON(s.cards.ToggleFollow(userID, id))
}

// ToggleSave handles POST /api/posts/:id/save.
func (s *Server) ToggleSave(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if !s.postExists(c, id) {
		return nil
	}
	return c.JSON(s.cards.ToggleSave(userID, id))
}

// postExists verifies the post, writing a 404 when missing.
func (s *Server) postExists(c *fiber.Ctx, id uint) bool {
	if _, err := s.postRepo.GetByID(c.UserContext(), id); err != nil {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
		return false
	}
	return true
}
