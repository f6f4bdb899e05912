package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/models"
	"github.com/terraincognita07/constancia/internal/services"
)

func (handler *Handler) CreateSale(c *fiber.Ctx) error {
	var input saleInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	day, err := handler.resolveDay(input.Date)
	if err != nil {
		return serviceError(c, err)
	}

	document, revision := documentFromContext(c)
	ledger := services.NewLedgerService(document)
	if err := ledger.RecordSale(currentUserName(c), input.Product, day, input.Quantity); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"product":  input.Product,
		"quantity": input.Quantity,
		"date":     services.DayKey(day),
	})
}

func (handler *Handler) ListSales(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	sales := document.Sales[currentUserName(c)]
	if sales == nil {
		sales = []models.SaleEntry{}
	}
	return c.JSON(fiber.Map{"sales": sales})
}

func (handler *Handler) CreateCost(c *fiber.Ctx) error {
	var input costInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day, err := handler.resolveDay(input.Date)
	if err != nil {
		return serviceError(c, err)
	}

	document, revision := documentFromContext(c)
	ledger := services.NewLedgerService(document)
	if err := ledger.RecordCost(currentUserName(c), day, input.Concept, input.Amount); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"concept": input.Concept, "date": services.DayKey(day)})
}

func (handler *Handler) GetBalance(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	return c.JSON(services.BuildBalance(document, currentUserName(c)))
}
