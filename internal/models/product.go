package models

import "time"

// Product represents an auto part in the catalog.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string    `json:"name" validate:"required,min=3,max=200"`
	Description   string    `json:"description" validate:"omitempty,max=2000"`
	PartNumber    string    `json:"part_number" validate:"required,max=100"`
	Brand         string    `json:"brand" validate:"required,max=100"`
	Category      string    `json:"category" validate:"required,max=100"`
	BasePrice     float64   `json:"base_price" validate:"required,gt=0"`
	ImageURL      string    `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	InStock       bool      `json:"in_stock"`
	StockQuantity int       `json:"stock_quantity" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string  `json:"name" validate:"omitempty,min=3,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	PartNumber    *string  `json:"part_number" validate:"omitempty,max=100"`
	Brand         *string  `json:"brand" validate:"omitempty,max=100"`
	Category      *string  `json:"category" validate:"omitempty,max=100"`
	BasePrice     *float64 `json:"base_price" validate:"omitempty,gt=0"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,max=500"`
	InStock       *bool    `json:"in_stock"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
}

// Apply merges the patch into the product, field by field.
func (p *ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.PartNumber != nil {
		product.PartNumber = *p.PartNumber
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.BasePrice != nil {
		product.BasePrice = *p.BasePrice
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.InStock != nil {
		product.InStock = *p.InStock
	}
	if p.StockQuantity != nil {
		product.StockQuantity = *p.StockQuantity
	}
}

// ProductFilter narrows catalog listings. Empty fields match everything.
type ProductFilter struct {
	Brand    string
	Category string
	Search   string
}
