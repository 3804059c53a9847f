package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"nombre" validate:"required"`
	Barcode  string          `json:"codigoBarra"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int64           `json:"stock" validate:"min=0"`
	ImageURL string          `json:"imagenUrl" validate:"omitempty,url"`
}

// UpdateProductRequest campos opcionales a actualizar (nil = sin cambio).
type UpdateProductRequest struct {
	Name     *string          `json:"nombre"`
	Barcode  *string          `json:"codigoBarra"`
	Price    *decimal.Decimal `json:"precio"`
	Stock    *int64           `json:"stock" validate:"omitempty,min=0"`
	ImageURL *string          `json:"imagenUrl" validate:"omitempty,url"`
	Active   *bool            `json:"activo"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nombre"`
	Barcode   string          `json:"codigoBarra,omitempty"`
	Price     decimal.Decimal `json:"precio"`
	Stock     int64           `json:"stock"`
	ImageURL  string          `json:"imagenUrl,omitempty"`
	Active    bool            `json:"activo"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
