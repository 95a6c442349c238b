package models

import "time"

// StockStatus enumerates product availability states
type StockStatus string

const (
	StockOut    StockStatus = "OUT OF STOCK"
	StockIn     StockStatus = "IN STOCK"
	StockNoInfo StockStatus = "NO INFO"
)

// Valid reports whether the stock status is a known value
func (s StockStatus) Valid() bool {
	return s == StockOut || s == StockIn || s == StockNoInfo
}

// Product represents a catalog product
type Product struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Photo        string      `json:"photo"`
	Quantity     int         `json:"quantity"`
	PricePerUnit float64     `json:"pricePerUnit"`
	Stock        StockStatus `json:"stock"`
	Description  string      `json:"description"`
	AddedByID    int         `json:"addedById"`
	CategoryID   *int        `json:"categoryId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string      `json:"name"`
	Photo        string      `json:"photo"`
	Quantity     int         `json:"quantity"`
	PricePerUnit float64     `json:"pricePerUnit"`
	Stock        StockStatus `json:"stock"`
	Description  string      `json:"description"`
	CategoryID   *int        `json:"categoryId"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name         *string      `json:"name"`
	Photo        *string      `json:"photo"`
	Quantity     *int         `json:"quantity"`
	PricePerUnit *float64     `json:"pricePerUnit"`
	Stock        *StockStatus `json:"stock"`
	Description  *string      `json:"description"`
	CategoryID   *int         `json:"categoryId"`
}
