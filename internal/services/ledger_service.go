package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/constancia/internal/models"
)

// LedgerService appends outreach events, sales and operating costs to the
// document. Appends only ever grow the ledgers; nothing is edited or removed,
// and duplicate dates are summed at read time by the analytics side.
// Durability is the caller's job: it persists the whole document after the
// command, and a failed persist means the append never happened.
type LedgerService struct {
	document *models.Document
}

func NewLedgerService(document *models.Document) *LedgerService {
	return &LedgerService{document: document}
}

func (service *LedgerService) RecordEvent(userName string, kind models.EventKind, day time.Time, count int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown event kind %q", ErrValidation, kind)
	}
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrValidation, count)
	}
	if _, exists := service.document.Users[userName]; !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, userName)
	}

	ledger := service.document.EventsByKind(kind)
	ledger[userName] = append(ledger[userName], models.EventEntry{
		ID:    uuid.NewString(),
		Date:  DayKey(day),
		Count: count,
	})
	return nil
}

// RecordSale snapshots the product's current price, cost and points into one
// SaleEntry per unit, so later product edits never change historical profit,
// and bumps the product's cumulative sold counter.
func (service *LedgerService) RecordSale(userName string, productName string, day time.Time, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if _, exists := service.document.Users[userName]; !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, userName)
	}
	product, exists := service.document.Products[productName]
	if !exists {
		return fmt.Errorf("%w: product %q", ErrNotFound, productName)
	}

	dayValue := DayKey(day)
	for unit := 0; unit < quantity; unit++ {
		service.document.Sales[userName] = append(service.document.Sales[userName], models.SaleEntry{
			ID:         uuid.NewString(),
			Date:       dayValue,
			Product:    productName,
			UnitPrice:  product.UnitPrice,
			UnitCost:   product.UnitCost,
			UnitMargin: product.Margin(),
			Points:     product.Points,
		})
	}
	product.UnitsSold += quantity
	return nil
}

func (service *LedgerService) RecordCost(userName string, day time.Time, concept string, amount float64) error {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return fmt.Errorf("%w: empty cost concept", ErrValidation)
	}
	if amount < 0 {
		return fmt.Errorf("%w: negative amount %.2f", ErrValidation, amount)
	}
	if _, exists := service.document.Users[userName]; !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, userName)
	}

	service.document.Costs[userName] = append(service.document.Costs[userName], models.CostEntry{
		ID:      uuid.NewString(),
		Date:    DayKey(day),
		Concept: concept,
		Amount:  amount,
	})
	return nil
}
