package repository

import "github.com/kumishop/kumi-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de
	// una transacción, para descontar o restaurar stock sin carreras.
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id int64, stock int64) error
	List(activeOnly bool, limit, offset int) ([]*entity.Product, error)
	Delete(id int64) error
}
