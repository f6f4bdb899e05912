package models

// DayFormat is the calendar-day key used everywhere in the document.
// Day granularity only; lexical order equals chronological order.
const DayFormat = "2006-01-02"

type EventKind string

const (
	KindContact EventKind = "contact"
	KindDemo    EventKind = "demo"
	KindPlan    EventKind = "plan"
)

func (kind EventKind) Valid() bool {
	switch kind {
	case KindContact, KindDemo, KindPlan:
		return true
	default:
		return false
	}
}

// EventEntry is one appended outreach record. Entries are never edited or
// removed; several entries may share the same date and are summed at read
// time.
type EventEntry struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SaleEntry snapshots the product's price, cost and points at sale time so
// that later product edits never rewrite historical profit.
type SaleEntry struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Product    string  `json:"product"`
	UnitPrice  float64 `json:"unit_price"`
	UnitCost   float64 `json:"unit_cost"`
	UnitMargin float64 `json:"unit_margin"`
	Points     float64 `json:"points"`
}

// CostEntry is a standalone operating cost, independent of product sales.
type CostEntry struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}
