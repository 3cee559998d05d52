package server

import (
	"errors"
	"testing"

	"plantify/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "comment ID", humanizeParam("commentId"))
	assert.Equal(t, "slug", humanizeParam("slug"))
}

func TestMapServiceError(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, mapServiceError(models.NewValidationError("bad")))
	assert.Equal(t, fiber.StatusNotFound, mapServiceError(models.NewNotFoundError("Post", 1)))
	assert.Equal(t, fiber.StatusUnauthorized, mapServiceError(models.NewUnauthorizedError("no")))
	assert.Equal(t, fiber.StatusInternalServerError, mapServiceError(models.NewInternalError(errors.New("boom"))))
	assert.Equal(t, fiber.StatusInternalServerError, mapServiceError(errors.New("plain")))
}
