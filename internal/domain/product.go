package domain

// ProductSKU maps a cart item name to the fulfillment partner's product
// code. Items with no mapping fall back to the configured default.
type ProductSKU struct {
	Name string
	SKU  string
	Size string
}
