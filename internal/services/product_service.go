package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/constancia/internal/models"
)

// ProductService manages the product catalog. Upserts replace cost, price
// and points wholesale; the cumulative sold counter and historical sale
// snapshots are never touched by an edit.
type ProductService struct {
	document *models.Document
}

func NewProductService(document *models.Document) *ProductService {
	return &ProductService{document: document}
}

func (service *ProductService) Upsert(name string, unitCost float64, unitPrice float64, points float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty product name", ErrValidation)
	}
	if unitCost < 0 || unitPrice < 0 || points < 0 {
		return fmt.Errorf("%w: negative product figures", ErrValidation)
	}

	if existing, exists := service.document.Products[name]; exists {
		existing.UnitCost = unitCost
		existing.UnitPrice = unitPrice
		existing.Points = points
		return nil
	}

	service.document.Products[name] = &models.Product{
		UnitCost:  unitCost,
		UnitPrice: unitPrice,
		Points:    points,
	}
	return nil
}
