package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/models"
)

// AuthRequired authenticates the cookie token and loads the document once
// for the whole request. Handlers read the document from locals, mutate it,
// and persist it; the next request loads a fresh generation.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userName, err := handler.userNameFromRequest(c)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	document, revision, err := handler.store.Load()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "load document failed")
	}

	user, exists := document.Users[userName]
	if !exists {
		handler.clearAuthCookie(c)
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserNameKey, userName)
	c.Locals(contextUserKey, user)
	c.Locals(contextDocumentKey, document)
	c.Locals(contextRevisionKey, revision)
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin only")
	}
	return c.Next()
}

// LeaderOnly admits leaders and the admin.
func (handler *Handler) LeaderOnly(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || (user.Role != models.RoleLeader && user.Role != models.RoleAdmin) {
		return jsonError(c, fiber.StatusForbidden, "leader only")
	}
	return c.Next()
}
