package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Document is the whole persisted state. It round-trips through the document
// store as a single JSON object; top-level keys this package does not know
// about are carried in Extra and written back untouched.
type Document struct {
	Users         map[string]*User        `json:"-"`
	ContactEvents map[string][]EventEntry `json:"-"`
	DemoEvents    map[string][]EventEntry `json:"-"`
	PlanEvents    map[string][]EventEntry `json:"-"`
	Sales         map[string][]SaleEntry  `json:"-"`
	Costs         map[string][]CostEntry  `json:"-"`
	Notes         map[string]string       `json:"-"`
	Products      map[string]*Product     `json:"-"`
	AdminNotices  []AdminNotice           `json:"-"`

	Extra map[string]json.RawMessage `json:"-"`
}

const (
	keyUsers         = "users"
	keyContactEvents = "contact_events"
	keyDemoEvents    = "demo_events"
	keyPlanEvents    = "plan_events"
	keySales         = "sales"
	keyCosts         = "costs"
	keyNotes         = "notes"
	keyProducts      = "products"
	keyAdminNotices  = "admin_notices"
)

// NewDocument returns an empty document with every expected collection
// initialized.
func NewDocument() *Document {
	document := &Document{}
	document.Repair()
	return document
}

// Repair fills in every missing expected collection and back-fills per-user
// defaults. Loading favors availability over strict validation: a partially
// missing document is completed, never rejected.
func (document *Document) Repair() {
	if document.Users == nil {
		document.Users = map[string]*User{}
	}
	if document.ContactEvents == nil {
		document.ContactEvents = map[string][]EventEntry{}
	}
	if document.DemoEvents == nil {
		document.DemoEvents = map[string][]EventEntry{}
	}
	if document.PlanEvents == nil {
		document.PlanEvents = map[string][]EventEntry{}
	}
	if document.Sales == nil {
		document.Sales = map[string][]SaleEntry{}
	}
	if document.Costs == nil {
		document.Costs = map[string][]CostEntry{}
	}
	if document.Notes == nil {
		document.Notes = map[string]string{}
	}
	if document.Products == nil {
		document.Products = map[string]*Product{}
	}
	if document.AdminNotices == nil {
		document.AdminNotices = []AdminNotice{}
	}
	if document.Extra == nil {
		document.Extra = map[string]json.RawMessage{}
	}

	for _, user := range document.Users {
		if user == nil {
			continue
		}
		if user.Role == "" {
			user.Role = RoleMember
		}
		if user.Members == nil {
			user.Members = []string{}
		}
		if user.PendingRequests == nil {
			user.PendingRequests = []string{}
		}
	}
}

// EventsByKind returns the ledger for one event kind, or nil for an unknown
// kind.
func (document *Document) EventsByKind(kind EventKind) map[string][]EventEntry {
	switch kind {
	case KindContact:
		return document.ContactEvents
	case KindDemo:
		return document.DemoEvents
	case KindPlan:
		return document.PlanEvents
	default:
		return nil
	}
}

func (document *Document) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode document object: %w", err)
	}

	*document = Document{Extra: map[string]json.RawMessage{}}
	for key, value := range raw {
		var err error
		switch key {
		case keyUsers:
			err = json.Unmarshal(value, &document.Users)
		case keyContactEvents:
			err = json.Unmarshal(value, &document.ContactEvents)
		case keyDemoEvents:
			err = json.Unmarshal(value, &document.DemoEvents)
		case keyPlanEvents:
			err = json.Unmarshal(value, &document.PlanEvents)
		case keySales:
			err = json.Unmarshal(value, &document.Sales)
		case keyCosts:
			err = json.Unmarshal(value, &document.Costs)
		case keyNotes:
			err = json.Unmarshal(value, &document.Notes)
		case keyProducts:
			err = json.Unmarshal(value, &document.Products)
		case keyAdminNotices:
			err = json.Unmarshal(value, &document.AdminNotices)
		default:
			document.Extra[key] = value
		}
		if err != nil {
			return fmt.Errorf("decode document key %q: %w", key, err)
		}
	}

	document.Repair()
	return nil
}

func (document *Document) MarshalJSON() ([]byte, error) {
	merged := map[string]json.RawMessage{}
	for key, value := range document.Extra {
		merged[key] = value
	}

	known := []struct {
		key   string
		value any
	}{
		{keyUsers, document.Users},
		{keyContactEvents, document.ContactEvents},
		{keyDemoEvents, document.DemoEvents},
		{keyPlanEvents, document.PlanEvents},
		{keySales, document.Sales},
		{keyCosts, document.Costs},
		{keyNotes, document.Notes},
		{keyProducts, document.Products},
		{keyAdminNotices, document.AdminNotices},
	}
	for _, field := range known {
		encoded, err := json.Marshal(field.value)
		if err != nil {
			return nil, fmt.Errorf("encode document key %q: %w", field.key, err)
		}
		merged[field.key] = encoded
	}

	return json.Marshal(merged)
}

// UserNames returns every user name in stable order, for display lists.
func (document *Document) UserNames() []string {
	names := make([]string, 0, len(document.Users))
	for name := range document.Users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
