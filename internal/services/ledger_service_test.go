package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/constancia/internal/models"
)

func TestRecordEventAppendsDuplicateDates(t *testing.T) {
	document := newTestDocument("ana")
	ledger := NewLedgerService(document)
	day := mustDay(t, "2024-01-01")

	if err := ledger.RecordEvent("ana", models.KindContact, day, 3); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if err := ledger.RecordEvent("ana", models.KindContact, day, 2); err != nil {
		t.Fatalf("second record failed: %v", err)
	}

	if len(document.ContactEvents["ana"]) != 2 {
		t.Fatalf("expected 2 appended entries, got %d", len(document.ContactEvents["ana"]))
	}

	analytics := NewAnalyticsService(document, DefaultWeeklyGoals())
	if total := analytics.DailyTotal("ana", models.KindContact, day); total != 5 {
		t.Fatalf("expected summed daily total 5, got %d", total)
	}
}

func TestRecordEventValidation(t *testing.T) {
	document := newTestDocument("ana")
	ledger := NewLedgerService(document)
	day := mustDay(t, "2024-01-01")

	if err := ledger.RecordEvent("ana", models.KindContact, day, -1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative count, got %v", err)
	}
	if err := ledger.RecordEvent("ana", models.EventKind("call"), day, 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown kind, got %v", err)
	}
	if err := ledger.RecordEvent("ghost", models.KindContact, day, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
	if len(document.ContactEvents["ana"]) != 0 {
		t.Fatalf("expected rejected records to leave the ledger empty")
	}
}

func TestRecordSaleSnapshotsCurrentProductFigures(t *testing.T) {
	document := newTestDocument("ana")
	document.Products["Filter"] = &models.Product{UnitCost: 40, UnitPrice: 100, Points: 2}
	ledger := NewLedgerService(document)
	day := mustDay(t, "2024-02-10")

	if err := ledger.RecordSale("ana", "Filter", day, 3); err != nil {
		t.Fatalf("record sale failed: %v", err)
	}

	sales := document.Sales["ana"]
	if len(sales) != 3 {
		t.Fatalf("expected one entry per unit, got %d", len(sales))
	}
	for _, sale := range sales {
		if sale.UnitPrice != 100 || sale.UnitCost != 40 || sale.UnitMargin != 60 || sale.Points != 2 {
			t.Fatalf("unexpected sale snapshot: %+v", sale)
		}
		if sale.ID == "" {
			t.Fatalf("expected sale entry to carry an id")
		}
	}
	if document.Products["Filter"].UnitsSold != 3 {
		t.Fatalf("expected units sold 3, got %d", document.Products["Filter"].UnitsSold)
	}

	// A later price edit must not rewrite the recorded margin.
	document.Products["Filter"].UnitPrice = 250
	if document.Sales["ana"][0].UnitMargin != 60 {
		t.Fatalf("expected historical margin 60 after edit, got %.2f", document.Sales["ana"][0].UnitMargin)
	}
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	document := newTestDocument("ana")
	ledger := NewLedgerService(document)

	err := ledger.RecordSale("ana", "Nope", mustDay(t, "2024-02-10"), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordCostValidation(t *testing.T) {
	document := newTestDocument("ana")
	ledger := NewLedgerService(document)
	day := mustDay(t, "2024-02-10")

	if err := ledger.RecordCost("ana", day, "   ", 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty concept, got %v", err)
	}
	if err := ledger.RecordCost("ana", day, "fuel", -5); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative amount, got %v", err)
	}
	if err := ledger.RecordCost("ana", day, "fuel", 12.5); err != nil {
		t.Fatalf("record cost failed: %v", err)
	}
	if len(document.Costs["ana"]) != 1 || document.Costs["ana"][0].Concept != "fuel" {
		t.Fatalf("unexpected cost ledger: %+v", document.Costs["ana"])
	}
}
