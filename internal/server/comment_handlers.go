package server

import (
	"plantify/internal/models"
	"plantify/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments. With ?recent=true it
// returns only the newest few, for the collapsed card view.
func (s *Server) GetComments(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var comments []service.CommentView
	if c.QueryBool("recent") {
		comments, err = s.commentService.ListRecent(c.UserContext(), id, c.QueryInt("limit", 5))
	} else {
		comments, err = s.commentService.ListComments(c.UserContext(), id)
	}
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// One submission per card at a time, duplicates are dropped.
	if !s.cards.BeginCommentSubmit(userID, id) {
		return models.RespondWithError(c, fiber.StatusTooManyRequests,
			models.NewValidationError("Comment submission already in progress"))
	}
	defer s.cards.EndCommentSubmit(userID, id)

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  id,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
