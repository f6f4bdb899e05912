package models

// Product is keyed by its unique name inside Document.Products.
type Product struct {
	UnitCost  float64 `json:"unit_cost"`
	UnitPrice float64 `json:"unit_price"`
	Points    float64 `json:"points"`
	UnitsSold int     `json:"units_sold"`
}

// Margin is always derived from the current price and cost. It is never
// stored, so edits to either field cannot leave a stale cached value behind.
func (product *Product) Margin() float64 {
	return product.UnitPrice - product.UnitCost
}

// AdminNotice is a message left for the administrator, e.g. a forgotten
// password report from the login screen.
type AdminNotice struct {
	Date    string `json:"date"`
	User    string `json:"user"`
	Message string `json:"message"`
}
