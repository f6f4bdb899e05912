package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/services"
)

func (handler *Handler) GetNote(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	notes := services.NewNoteService(document)

	text, err := notes.Note(currentUserName(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"text": text})
}

// SaveNote overwrites the user's single note; there is no note history.
func (handler *Handler) SaveNote(c *fiber.Ctx) error {
	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision := documentFromContext(c)
	notes := services.NewNoteService(document)
	if err := notes.SaveNote(currentUserName(c), input.Text); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.JSON(fiber.Map{"status": "saved"})
}
