package models

import "time"

// CartItem is a single cart line. Product name and price are snapshotted at
// add time so order history stays accurate when the catalog changes later.
type CartItem struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `json:"user_id" gorm:"index;type:varchar(36)"`
	ProductID    string    `json:"product_id" gorm:"type:varchar(36)"`
	ProductName  string    `json:"product_name"`
	ProductPrice float64   `json:"product_price"`
	ProductImage string    `json:"product_image,omitempty"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// LineTotal is the snapshotted price times the quantity.
func (i CartItem) LineTotal() float64 {
	return i.ProductPrice * float64(i.Quantity)
}

// CartSummary is the cart state returned to clients after every mutation.
type CartSummary struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// Summarize builds a CartSummary from a list of lines.
func Summarize(items []CartItem) CartSummary {
	summary := CartSummary{Items: items}
	if summary.Items == nil {
		summary.Items = []CartItem{}
	}
	for _, item := range items {
		summary.Total += item.LineTotal()
		summary.ItemCount += item.Quantity
	}
	return summary
}
