package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/services"
)

func (handler *Handler) RequestJoin(c *fiber.Ctx) error {
	var input joinInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision := documentFromContext(c)
	hierarchy := services.NewHierarchyService(document)
	if err := hierarchy.RequestJoin(currentUserName(c), input.Leader); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.JSON(fiber.Map{"status": "requested"})
}

func (handler *Handler) ApproveJoin(c *fiber.Ctx) error {
	var input approveInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision := documentFromContext(c)
	hierarchy := services.NewHierarchyService(document)
	if err := hierarchy.Approve(currentUserName(c), input.Member); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.JSON(fiber.Map{"status": "approved"})
}

func (handler *Handler) PendingRequests(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"pending": currentUser(c).PendingRequests})
}

// TeamTree flattens the caller's team into (name, role, depth) rows,
// depth-first, for display.
func (handler *Handler) TeamTree(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	hierarchy := services.NewHierarchyService(document)

	nodes, err := hierarchy.Subtree(currentUserName(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"tree": nodes})
}
