package server

import (
	"plantify/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed and GET /api/posts.
// Authenticated viewers get their local card state overlaid on the
// stored counts.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID, authenticated := s.optionalUserID(c)

	items, err := s.feedService.ListFeed(c.UserContext(), !authenticated)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	if authenticated {
		items = s.cards.Decorate(items, userID)
	}

	return c.JSON(fiber.Map{"posts": items})
}
