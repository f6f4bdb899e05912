package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/constancia/internal/models"
)

func TestUpsertCreatesAndReplacesProduct(t *testing.T) {
	document := models.NewDocument()
	products := NewProductService(document)

	if err := products.Upsert("Filter", 40, 100, 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	created := document.Products["Filter"]
	if created.Margin() != 60 {
		t.Fatalf("expected margin 60, got %.2f", created.Margin())
	}

	created.UnitsSold = 5
	if err := products.Upsert("Filter", 50, 120, 3); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	replaced := document.Products["Filter"]
	if replaced.UnitCost != 50 || replaced.UnitPrice != 120 || replaced.Points != 3 {
		t.Fatalf("expected figures replaced, got %+v", replaced)
	}
	if replaced.UnitsSold != 5 {
		t.Fatalf("expected sold counter untouched by an edit, got %d", replaced.UnitsSold)
	}
}

func TestUpsertValidation(t *testing.T) {
	products := NewProductService(models.NewDocument())

	if err := products.Upsert("  ", 1, 2, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}
	if err := products.Upsert("Filter", -1, 2, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative cost, got %v", err)
	}
}
