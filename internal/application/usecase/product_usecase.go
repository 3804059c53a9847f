// Package usecase reúne los casos de uso de catálogo y datos de referencia.
package usecase

import (
	"fmt"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
	"github.com/kumishop/kumi-api/pkg/logger"
)

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	products repository.ProductRepository
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(products repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, log: log}
}

// Create registra un producto nuevo. El código de barras, si viene, debe ser único.
func (uc *ProductUseCase) Create(req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}

	product := &entity.Product{
		Name:     req.Name,
		Barcode:  req.Barcode,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
		Active:   true,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("producto_id", product.ID).Str("nombre", product.Name).Msg("producto creado")

	resp := toProductResponse(product)
	return &resp, nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByBarcode busca un producto por su código de barras (lector en caja).
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	if barcode == "" {
		return nil, fmt.Errorf("código de barras vacío: %w", domain.ErrInvalidInput)
	}
	product, err := uc.products.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update aplica los campos no nulos de la solicitud.
func (uc *ProductUseCase) Update(id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List lista productos con paginación; activeOnly filtra los descontinuados.
func (uc *ProductUseCase) List(activeOnly bool, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()

	products, err := uc.products.List(activeOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		resp.Items = append(resp.Items, toProductResponse(p))
	}
	return resp, nil
}

// Delete desactiva o elimina el producto según decida el repositorio.
func (uc *ProductUseCase) Delete(id int64) error {
	if _, err := uc.products.GetByID(id); err != nil {
		return err
	}
	return uc.products.Delete(id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Barcode:   p.Barcode,
		Price:     p.Price,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
