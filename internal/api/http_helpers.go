package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/docstore"
	"github.com/terraincognita07/constancia/internal/models"
	"github.com/terraincognita07/constancia/internal/services"
)

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the shared error taxonomy onto HTTP statuses. Anything
// unrecognized is a 500; the taxonomy errors are all caller-recoverable.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrWeakPassword):
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return jsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	default:
		return jsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}

// persist writes the whole mutated document back under its revision token.
// A stale revision means another interaction saved first; the client retries
// the command against the fresh document.
func (handler *Handler) persist(c *fiber.Ctx, document *models.Document, revision docstore.Revision) (bool, error) {
	if _, err := handler.store.Save(document, revision); err != nil {
		if errors.Is(err, docstore.ErrConflict) {
			return false, jsonError(c, fiber.StatusConflict, "document changed concurrently, retry")
		}
		return false, jsonError(c, fiber.StatusInternalServerError, "persist failed")
	}
	return true, nil
}

func documentFromContext(c *fiber.Ctx) (*models.Document, docstore.Revision) {
	document, _ := c.Locals(contextDocumentKey).(*models.Document)
	revision, _ := c.Locals(contextRevisionKey).(docstore.Revision)
	return document, revision
}

func currentUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(contextUserNameKey).(string)
	return name
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}
