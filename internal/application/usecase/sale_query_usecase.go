package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// ReceiptLine línea del comprobante de venta con nombres ya resueltos.
type ReceiptLine struct {
	ProductName string
	SizeLabel   string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptData datos completos para generar el comprobante de una venta.
type ReceiptData struct {
	SaleID           string
	Date             time.Time
	CustomerName     string
	CustomerDocument string
	PaymentMethod    string
	Status           string
	Lines            []ReceiptLine
	Total            decimal.Decimal
}

// ReceiptGenerator genera el comprobante en PDF a partir de los datos de la venta.
type ReceiptGenerator interface {
	Generate(data *ReceiptData) ([]byte, error)
}

// SaleQueryUseCase lado de lectura de ventas: listados, detalle,
// estadísticas y comprobante PDF.
type SaleQueryUseCase struct {
	repo         repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	sizeRepo     repository.SizeRepository
	receipts     ReceiptGenerator
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(
	repo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	sizeRepo repository.SizeRepository,
	receipts ReceiptGenerator,
) *SaleQueryUseCase {
	return &SaleQueryUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		sizeRepo:     sizeRepo,
		receipts:     receipts,
	}
}

// SaleListFilter filtros aceptados por el listado.
type SaleListFilter struct {
	CustomerID string
	Status     string
	From       *time.Time
	To         *time.Time
}

// GetByID obtiene una venta con sus detalles.
func (uc *SaleQueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	details, err := uc.repo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// List lista ventas con filtros y paginación.
func (uc *SaleQueryUseCase) List(filter SaleListFilter, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.SaleFilter{
		CustomerID: filter.CustomerID,
		Status:     filter.Status,
		From:       filter.From,
		To:         filter.To,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// RecentByCustomer últimas ventas de un cliente (historial).
func (uc *SaleQueryUseCase) RecentByCustomer(customerID string, limit int) ([]dto.SaleResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	list, err := uc.repo.ListByCustomer(customerID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return items, nil
}

// Stats estadísticas agregadas de ventas.
func (uc *SaleQueryUseCase) Stats() (*dto.SaleStatsResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.SaleStatsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Voided:    stats.Voided,
		Income:    stats.Income,
	}, nil
}

// Receipt genera el comprobante PDF de una venta: resuelve cliente,
// productos y tallas, y delega el render al generador.
func (uc *SaleQueryUseCase) Receipt(id string) ([]byte, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.repo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(sale.CustomerID)
	if err != nil {
		return nil, err
	}

	data := &ReceiptData{
		SaleID:        sale.ID,
		Date:          sale.Date,
		PaymentMethod: sale.PaymentMethod,
		Status:        sale.Status,
		Total:         sale.Total,
	}
	if customer != nil {
		data.CustomerName = customer.Name
		data.CustomerDocument = customer.Document
	}
	for _, d := range details {
		line := ReceiptLine{
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		}
		if product, err := uc.productRepo.GetByID(d.ProductID); err == nil && product != nil {
			line.ProductName = product.Name
		}
		if size, err := uc.sizeRepo.GetByID(d.SizeID); err == nil && size != nil {
			line.SizeLabel = size.Label
		}
		data.Lines = append(data.Lines, line)
	}
	return uc.receipts.Generate(data)
}

func toSaleResponse(s *entity.Sale, details []*entity.SaleDetail) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	var detailItems []dto.SaleDetailResponse
	for _, d := range details {
		detailItems = append(detailItems, dto.SaleDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			SizeID:    d.SizeID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Date:          s.Date,
		Total:         s.Total,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Details:       detailItems,
	}
}
