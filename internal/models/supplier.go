package models

import "time"

// Supplier is an external parts supplier configured in the admin panel.
type Supplier struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string    `json:"name" validate:"required,max=200"`
	Code           string    `json:"code" gorm:"uniqueIndex;type:varchar(64)" validate:"required,max=64"`
	APIType        string    `json:"api_type" validate:"omitempty,oneof=abcp exist emex"`
	APIURL         string    `json:"api_url" validate:"omitempty,url"`
	APILogin       string    `json:"api_login,omitempty"`
	APIPassword    string    `json:"-" gorm:"type:varchar(255)"`
	MarkupPercent  float64   `json:"markup_percent" validate:"gte=0"`
	DeliveryDays   int       `json:"delivery_days" validate:"gte=0"`
	MinOrderAmount float64   `json:"min_order_amount" validate:"gte=0"`
	Priority       int       `json:"priority"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SupplierPatch carries a partial supplier update.
type SupplierPatch struct {
	Name           *string  `json:"name" validate:"omitempty,max=200"`
	Code           *string  `json:"code" validate:"omitempty,max=64"`
	APIType        *string  `json:"api_type" validate:"omitempty,oneof=abcp exist emex"`
	APIURL         *string  `json:"api_url" validate:"omitempty,url"`
	APILogin       *string  `json:"api_login"`
	APIPassword    *string  `json:"api_password"`
	MarkupPercent  *float64 `json:"markup_percent" validate:"omitempty,gte=0"`
	DeliveryDays   *int     `json:"delivery_days" validate:"omitempty,gte=0"`
	MinOrderAmount *float64 `json:"min_order_amount" validate:"omitempty,gte=0"`
	Priority       *int     `json:"priority"`
	Active         *bool    `json:"active"`
}

// Apply merges the patch into the supplier.
func (p *SupplierPatch) Apply(s *Supplier) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.APIType != nil {
		s.APIType = *p.APIType
	}
	if p.APIURL != nil {
		s.APIURL = *p.APIURL
	}
	if p.APILogin != nil {
		s.APILogin = *p.APILogin
	}
	if p.APIPassword != nil {
		s.APIPassword = *p.APIPassword
	}
	if p.MarkupPercent != nil {
		s.MarkupPercent = *p.MarkupPercent
	}
	if p.DeliveryDays != nil {
		s.DeliveryDays = *p.DeliveryDays
	}
	if p.MinOrderAmount != nil {
		s.MinOrderAmount = *p.MinOrderAmount
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}

// SupplierOffer is a priced offer for a product computed from a supplier's
// wholesale price and markup.
type SupplierOffer struct {
	SupplierID     string  `json:"supplier_id"`
	SupplierName   string  `json:"supplier_name"`
	Brand          string  `json:"brand"`
	PartNumber     string  `json:"part_number"`
	Description    string  `json:"description,omitempty"`
	WholesalePrice float64 `json:"wholesale_price"`
	ClientPrice    float64 `json:"client_price"`
	StockQuantity  int     `json:"stock_quantity"`
	DeliveryDays   int     `json:"delivery_days"`
}
