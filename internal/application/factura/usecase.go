package factura

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// PDFGenerator genera la representación imprimible de un borrador.
type PDFGenerator interface {
	GenerarBorradorPDF(ctx context.Context, f entity.FacturaVenta, totales Totales) ([]byte, error)
}

// UseCase casos de uso del borrador de factura de venta.
type UseCase struct {
	api   *backend.Client
	cache *cache.QueryCache
	store *Store
	pdf   PDFGenerator
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api *backend.Client, qc *cache.QueryCache, store *Store, pdf PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{api: api, cache: qc, store: store, pdf: pdf, log: log}
}

// Crear abre un borrador nuevo.
func (uc *UseCase) Crear() *Borrador { return uc.store.Crear() }

// Obtener devuelve un borrador por id.
func (uc *UseCase) Obtener(id string) (*Borrador, error) { return uc.store.Obtener(id) }

// Cerrar descarta un borrador.
func (uc *UseCase) Cerrar(id string) { uc.store.Cerrar(id) }

// Encabezado datos del encabezado del borrador.
type Encabezado struct {
	BodegaID      int64
	VendedorID    int64
	Fecha         string // YYYY-MM-DD; vacío = sin cambio
	TipoPago      string
	MedioPago     string
	PlazoPago     string
	Observaciones string
}

// SetEncabezado actualiza el encabezado del borrador.
func (uc *UseCase) SetEncabezado(id string, in Encabezado) (*Borrador, error) {
	b, err := uc.store.Obtener(id)
	if err != nil {
		return nil, err
	}

	var fecha time.Time
	if in.Fecha != "" {
		fecha, err = time.Parse(time.DateOnly, in.Fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida, se espera YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	tipo := entity.TipoPago(in.TipoPago)
	if in.TipoPago != "" && tipo != entity.PagoContado && tipo != entity.PagoCredito {
		return nil, fmt.Errorf("%w: tipo de pago debe ser contado o credito", domain.ErrInvalidInput)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if in.BodegaID != 0 {
		b.factura.BodegaID = in.BodegaID
	}
	if in.VendedorID != 0 {
		b.factura.VendedorID = in.VendedorID
	}
	if in.Fecha != "" {
		b.factura.Fecha = fecha
	}
	if in.TipoPago != "" {
		b.factura.TipoPago = tipo
	}
	if in.MedioPago != "" {
		b.factura.MedioPago = in.MedioPago
	}
	b.factura.PlazoPago = in.PlazoPago
	b.factura.Observaciones = in.Observaciones
	return b, nil
}

// LineaInput datos de una línea de venta.
type LineaInput struct {
	ProductoID     int64
	ProductoNombre string
	Precio         decimal.Decimal
	PorcDescuento  decimal.Decimal
	PorcIVA        decimal.Decimal
	Cantidad       decimal.Decimal
}

func (in LineaInput) validar() error {
	if in.ProductoID == 0 {
		return fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.Precio.IsNegative() || in.PorcDescuento.IsNegative() || in.PorcIVA.IsNegative() {
		return fmt.Errorf("%w: precio, descuento e IVA no pueden ser negativos", domain.ErrInvalidInput)
	}
	if in.PorcDescuento.GreaterThan(cien) {
		return fmt.Errorf("%w: el descuento no puede superar el 100%%", domain.ErrInvalidInput)
	}
	return nil
}

// AgregarLinea agrega una línea con sus montos derivados.
func (uc *UseCase) AgregarLinea(id string, in LineaInput) (*Borrador, error) {
	b, err := uc.store.Obtener(id)
	if err != nil {
		return nil, err
	}
	if err := in.validar(); err != nil {
		return nil, err
	}
	linea := CalcularLinea(entity.LineaFactura{
		ProductoID:     in.ProductoID,
		ProductoNombre: in.ProductoNombre,
		Precio:         in.Precio,
		PorcDescuento:  in.PorcDescuento,
		PorcIVA:        in.PorcIVA,
		Cantidad:       in.Cantidad,
	})
	b.mu.Lock()
	b.factura.Lineas = append(b.factura.Lineas, linea)
	b.mu.Unlock()
	return b, nil
}

// QuitarLinea elimina la línea en la posición dada.
func (uc *UseCase) QuitarLinea(id string, indice int) (*Borrador, error) {
	b, err := uc.store.Obtener(id)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if indice < 0 || indice >= len(b.factura.Lineas) {
		return nil, fmt.Errorf("%w: línea fuera de rango", domain.ErrInvalidInput)
	}
	b.factura.Lineas = append(b.factura.Lineas[:indice], b.factura.Lineas[indice+1:]...)
	return b, nil
}

// validarEmision reglas previas a emitir: al menos una línea, encabezado
// completo y plazo solo obligatorio a crédito.
func validarEmision(f entity.FacturaVenta) error {
	if len(f.Lineas) == 0 {
		return fmt.Errorf("%w: la factura requiere al menos una línea", domain.ErrInvalidInput)
	}
	if f.BodegaID == 0 || f.VendedorID == 0 {
		return fmt.Errorf("%w: bodega y vendedor son requeridos", domain.ErrInvalidInput)
	}
	if f.TipoPago == entity.PagoCredito && strings.TrimSpace(f.PlazoPago) == "" {
		return fmt.Errorf("%w: el plazo de pago es obligatorio a crédito", domain.ErrInvalidInput)
	}
	return nil
}

// Emitir valida el borrador, lo envía al backend y lo descarta en caso de
// éxito.
func (uc *UseCase) Emitir(ctx context.Context, id string) error {
	b, err := uc.store.Obtener(id)
	if err != nil {
		return err
	}
	f := b.Vista()
	if err := validarEmision(f); err != nil {
		return err
	}
	if err := uc.api.CreateFactura(ctx, f); err != nil {
		return err
	}
	uc.cache.Invalidate("productos") // la venta descuenta stock
	uc.store.Cerrar(id)
	return nil
}

// PDF genera la vista imprimible del borrador.
func (uc *UseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	b, err := uc.store.Obtener(id)
	if err != nil {
		return nil, err
	}
	f := b.Vista()
	return uc.pdf.GenerarBorradorPDF(ctx, f, CalcularTotales(f.Lineas))
}
