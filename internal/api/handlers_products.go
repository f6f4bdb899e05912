package api

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/models"
	"github.com/terraincognita07/constancia/internal/services"
)

type productView struct {
	Name      string  `json:"name"`
	UnitCost  float64 `json:"unit_cost"`
	UnitPrice float64 `json:"unit_price"`
	Margin    float64 `json:"margin"`
	Points    float64 `json:"points"`
	UnitsSold int     `json:"units_sold"`
}

func (handler *Handler) ListProducts(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)

	views := make([]productView, 0, len(document.Products))
	for _, name := range sortedProductNames(document.Products) {
		product := document.Products[name]
		views = append(views, productView{
			Name:      name,
			UnitCost:  product.UnitCost,
			UnitPrice: product.UnitPrice,
			Margin:    product.Margin(),
			Points:    product.Points,
			UnitsSold: product.UnitsSold,
		})
	}
	return c.JSON(fiber.Map{"products": views})
}

// UpsertProduct fully replaces cost/price/points for the named product.
// Historical sale snapshots keep the figures they were sold at.
func (handler *Handler) UpsertProduct(c *fiber.Ctx) error {
	var input productInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	document, revision := documentFromContext(c)
	products := services.NewProductService(document)
	if err := products.Upsert(c.Params("name"), input.UnitCost, input.UnitPrice, input.Points); err != nil {
		return serviceError(c, err)
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func sortedProductNames(products map[string]*models.Product) []string {
	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
