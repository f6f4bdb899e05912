package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision, err := handler.store.Load()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "load document failed")
	}

	auth := services.NewAuthService(document)
	if _, err := auth.Register(input.Name, input.Password, time.Now()); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	if err := handler.setAuthCookie(c, input.Name); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "issue session failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": input.Name})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, _, err := handler.store.Load()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "load document failed")
	}

	auth := services.NewAuthService(document)
	user, err := auth.Authenticate(input.Name, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.setAuthCookie(c, input.Name); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "issue session failed")
	}
	return c.JSON(fiber.Map{"name": input.Name, "role": user.Role})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "logged_out"})
}

// ForgotPassword appends an admin notice; there is no self-service reset in
// this tool.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision, err := handler.store.Load()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "load document failed")
	}

	auth := services.NewAuthService(document)
	if err := auth.ReportForgottenPassword(input.Name, time.Now()); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.JSON(fiber.Map{"status": "reported"})
}
