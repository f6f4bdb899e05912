package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/security"
	"github.com/terraincognita07/constancia/internal/services"
)

const tempPasswordLength = 12

func (handler *Handler) ListNotices(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	return c.JSON(fiber.Map{"notices": document.AdminNotices})
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)

	users := make([]fiber.Map, 0, len(document.Users))
	for _, name := range document.UserNames() {
		user := document.Users[name]
		users = append(users, fiber.Map{
			"name":   name,
			"role":   user.Role,
			"leader": user.Leader,
		})
	}
	return c.JSON(fiber.Map{"users": users})
}

// ResetPassword sets the named user's password. With an empty new_password a
// temporary one is generated and returned, to be read out to the user.
func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	generated := false
	if input.NewPassword == "" {
		temp, err := security.TempPassword(tempPasswordLength)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "generate password failed")
		}
		input.NewPassword = temp
		generated = true
	}

	document, revision := documentFromContext(c)
	auth := services.NewAuthService(document)
	if err := auth.ResetPassword(input.User, input.NewPassword); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}

	response := fiber.Map{"status": "reset"}
	if generated {
		response["temp_password"] = input.NewPassword
	}
	return c.JSON(response)
}

func (handler *Handler) PromoteToLeader(c *fiber.Ctx) error {
	var input promoteInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision := documentFromContext(c)
	auth := services.NewAuthService(document)
	if err := auth.PromoteToLeader(input.User); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.JSON(fiber.Map{"status": "promoted"})
}
