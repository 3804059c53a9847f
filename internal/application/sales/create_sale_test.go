package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
	"github.com/kumishop/kumi-api/internal/domain/sale"
	"github.com/kumishop/kumi-api/pkg/logger"
)

// ──────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────

type fakeOrderRepo struct {
	nextID   int64
	nextCode int64
	orders   map[int64]*entity.Order
	details  map[int64][]*entity.OrderDetail
	payments map[int64][]*entity.OrderPayment
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		nextID:   1,
		nextCode: 1000,
		orders:   map[int64]*entity.Order{},
		details:  map[int64][]*entity.OrderDetail{},
		payments: map[int64][]*entity.OrderPayment{},
	}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	o.ID = r.nextID
	o.Code = r.nextCode
	r.nextID++
	r.nextCode++
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) CreateDetail(d *entity.OrderDetail) error {
	d.ID = int64(len(r.details[d.OrderID]) + 1)
	r.details[d.OrderID] = append(r.details[d.OrderID], d)
	return nil
}

func (r *fakeOrderRepo) CreatePayment(p *entity.OrderPayment) error {
	p.ID = int64(len(r.payments[p.OrderID]) + 1)
	r.payments[p.OrderID] = append(r.payments[p.OrderID], p)
	return nil
}

func (r *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) GetDetailsByOrderID(orderID int64) ([]*entity.OrderDetail, error) {
	return r.details[orderID], nil
}

func (r *fakeOrderRepo) GetPaymentsByOrderID(orderID int64) ([]*entity.OrderPayment, error) {
	return r.payments[orderID], nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id int64) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	delete(r.details, id)
	delete(r.payments, id)
	return nil
}

func (r *fakeOrderRepo) DeleteDetails(orderID int64) error {
	delete(r.details, orderID)
	return nil
}

func (r *fakeOrderRepo) DeletePayments(orderID int64) error {
	delete(r.payments, orderID)
	return nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(id int64, stock int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) List(activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.products, id)
	return nil
}

type fakeMethodRepo struct{ methods map[int64]*entity.PaymentMethod }

func (r *fakeMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.methods {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

type fakeShippingRepo struct{ types map[int64]*entity.ShippingType }

func (r *fakeShippingRepo) ListActive() ([]*entity.ShippingType, error) { return nil, nil }
func (r *fakeShippingRepo) GetByID(id int64) (*entity.ShippingType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

type fakeChannelRepo struct{}

func (fakeChannelRepo) List() ([]*entity.Channel, error) {
	return []*entity.Channel{{ID: 1, Name: "Instagram"}}, nil
}
func (fakeChannelRepo) GetByID(id int64) (*entity.Channel, error) {
	return &entity.Channel{ID: id, Name: "Instagram"}, nil
}

type fakeStatusRepo struct{}

func (fakeStatusRepo) List() ([]*entity.OrderStatus, error) {
	return []*entity.OrderStatus{{ID: 1, Name: "Pendiente"}}, nil
}
func (fakeStatusRepo) GetByID(id int64) (*entity.OrderStatus, error) {
	return &entity.OrderStatus{ID: id, Name: "Pendiente"}, nil
}

// fakeTx ejecuta el callback sin transacción real, sobre los mismos fakes.
type fakeTx struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
}

func (t *fakeTx) RunSale(ctx context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(t.orders, t.products)
}

// ──────────────────────────────────────────────
// Armado del caso de uso
// ──────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	uc       *UseCase
	orders   *fakeOrderRepo
	products *fakeProductRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	orders := newFakeOrderRepo()
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		10: {ID: 10, Name: "Collar luna", Price: dec("100"), Stock: 10, Active: true},
		20: {ID: 20, Name: "Aretes sol", Price: dec("50"), Stock: 3, Active: true},
		30: {ID: 30, Name: "Descontinuado", Price: dec("80"), Stock: 5, Active: false},
	}}
	methods := &fakeMethodRepo{methods: map[int64]*entity.PaymentMethod{
		sale.CashMethodID: {ID: sale.CashMethodID, Name: "Efectivo", Type: "efectivo", Active: true},
		2: {ID: 2, Name: "Tarjeta", Type: "tarjeta", CommissionPercent: decPtr("3"), Active: true},
	}}
	shippings := &fakeShippingRepo{types: map[int64]*entity.ShippingType{
		5: {ID: 5, Name: "Local", Kind: "LOCAL", BaseCost: decPtr("50"), IsFixedCost: true, Active: true},
	}}

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := NewUseCase(orders, products, fakeChannelRepo{}, fakeStatusRepo{}, methods, shippings,
		&fakeTx{orders: orders, products: products}, nil, nil, log)

	return &fixture{uc: uc, orders: orders, products: products}
}

// ventaBase solicitud válida: 2 collares a L 100, pago exacto en efectivo.
func ventaBase() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ChannelID:     1,
		StatusID:      1,
		OrderDate:     "2026-08-30",
		CustomerName:  "Ana López",
		CustomerPhone: "9999-1111",
		Items: []dto.SaleItemRequest{
			{ProductID: 10, Quantity: 2},
		},
		Payments: []dto.SalePaymentRequest{
			{MethodID: sale.CashMethodID, Amount: dec("230")},
		},
	}
}

// ──────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────

func TestCreateSale_PersisteTotalesYDescuentaStock(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateSale(context.Background(), ventaBase())
	require.NoError(t, err)

	// Cabecera con consecutivo asignado
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1000), resp.Code)

	// Totales recalculados en el servidor: 200 + 15% ISV = 230
	assert.True(t, dec("200").Equal(resp.Totals.Subtotal), "subtotal: %s", resp.Totals.Subtotal)
	assert.True(t, dec("30").Equal(resp.Totals.Tax), "isv: %s", resp.Totals.Tax)
	assert.True(t, dec("230").Equal(resp.Totals.Total), "total: %s", resp.Totals.Total)
	assert.True(t, resp.Totals.Change.IsZero(), "pago exacto no genera vuelto")

	// Stock descontado 10 -> 8
	p, err := f.products.GetByID(10)
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.Stock)

	// Detalles y pagos persistidos
	require.Len(t, resp.Details, 1)
	assert.True(t, dec("200").Equal(resp.Details[0].Subtotal))
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, sale.CashMethodID, resp.Payments[0].MethodID)
}

func TestCreateSale_EfectivoConVuelto(t *testing.T) {
	f := newFixture(t)

	req := ventaBase()
	req.Payments[0].Amount = dec("250")

	resp, err := f.uc.CreateSale(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, dec("20").Equal(resp.Totals.Change), "vuelto: %s", resp.Totals.Change)
}

func TestCreateSale_ValidacionFallida(t *testing.T) {
	f := newFixture(t)

	req := ventaBase()
	req.CustomerName = ""

	_, err := f.uc.CreateSale(context.Background(), req)

	var verr *ValidationFailedError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Errors))
	for _, ve := range verr.Errors {
		fields = append(fields, ve.Field)
	}
	assert.Contains(t, fields, "nombreCliente")

	// Nada persistido, stock intacto
	assert.Empty(t, f.orders.orders)
	p, _ := f.products.GetByID(10)
	assert.Equal(t, int64(10), p.Stock)
}

func TestCreateSale_StockInsuficiente(t *testing.T) {
	f := newFixture(t)

	req := ventaBase()
	req.Items = []dto.SaleItemRequest{{ProductID: 20, Quantity: 5}} // stock 3

	_, err := f.uc.CreateSale(context.Background(), req)

	var serr *sale.StockError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Aretes sol", serr.ProductName)
	assert.Equal(t, int64(3), serr.Available)
	assert.Equal(t, int64(5), serr.Requested)
	assert.Empty(t, f.orders.orders)
}

func TestCreateSale_ProductoInactivo(t *testing.T) {
	f := newFixture(t)

	req := ventaBase()
	req.Items = []dto.SaleItemRequest{{ProductID: 30, Quantity: 1}}
	req.Payments[0].Amount = dec("92")

	_, err := f.uc.CreateSale(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_MetodoDePagoInexistente(t *testing.T) {
	f := newFixture(t)

	req := ventaBase()
	req.Payments = []dto.SalePaymentRequest{{MethodID: 99, Amount: dec("230")}}

	_, err := f.uc.CreateSale(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_ConEnvioFijo(t *testing.T) {
	f := newFixture(t)

	req := ventaBase()
	req.NeedsShipping = true
	shippingType := int64(5)
	req.ShippingTypeID = &shippingType
	req.CustomerAddress = "Col. Kennedy, Tegucigalpa"

	resp, err := f.uc.CreateSale(context.Background(), req)
	require.NoError(t, err)

	// Costo fijo L 50; el neto recibido lo descuenta: 230 − 50 = 180
	assert.True(t, dec("50").Equal(resp.Totals.ShippingCost))
	assert.True(t, dec("180").Equal(resp.Totals.NetAmountReceived), "neto: %s", resp.Totals.NetAmountReceived)
}

// ──────────────────────────────────────────────
// UpdateSale / DeleteSale
// ──────────────────────────────────────────────

func TestUpdateSale_RestauraYReaplicaStock(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreateSale(context.Background(), ventaBase())
	require.NoError(t, err)

	// De 2 a 1 unidad: pago exacto 115
	req := ventaBase()
	req.Items[0].Quantity = 1
	req.Payments[0].Amount = dec("115")

	updated, err := f.uc.UpdateSale(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Code, updated.Code, "el consecutivo no cambia al editar")
	assert.True(t, dec("115").Equal(updated.Totals.Total))

	// Stock: 10 − 2 + 2 − 1 = 9
	p, _ := f.products.GetByID(10)
	assert.Equal(t, int64(9), p.Stock)
}

func TestUpdateSale_NoExiste(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateSale(context.Background(), 777, ventaBase())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSale_RestauraStock(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreateSale(context.Background(), ventaBase())
	require.NoError(t, err)

	p, _ := f.products.GetByID(10)
	require.Equal(t, int64(8), p.Stock)

	require.NoError(t, f.uc.DeleteSale(context.Background(), created.ID))

	p, _ = f.products.GetByID(10)
	assert.Equal(t, int64(10), p.Stock)

	_, err = f.uc.GetSale(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetSale_DevuelveDetallesYPagos(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreateSale(context.Background(), ventaBase())
	require.NoError(t, err)

	got, err := f.uc.GetSale(created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Details, 1)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, created.Totals, got.Totals)
}
