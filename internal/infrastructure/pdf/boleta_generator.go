// Package pdf implementa la boleta electrónica de una acción (reserva/compra de propiedad).
//
// Layout de la página A4 (puntos, márgenes de 50):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Properties Market          Emisor (alineado der.)  │
//	│  "Boleta Electronica"                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Nombre / Fecha / Total pagado                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Propiedad | | | Valor Reserva | Valor Propiedad     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Subtotal / Pagado hasta la fecha / Saldo pendiente         │
//	│                                                             │
//	│  FOOTER: agradecimiento centrado                            │
//	└─────────────────────────────────────────────────────────────┘
//
// Las secciones usan coordenadas absolutas y deben dibujarse en ese orden.
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Boletas-api/internal/domain/entity"
)

// BoletaGenerator implementa billing.BoletaPDFGenerator.
type BoletaGenerator struct {
	newCanvas CanvasFactory
	now       func() time.Time
}

// Option configura el generador.
type Option func(*BoletaGenerator)

// WithClock reemplaza time.Now (fecha impresa y fecha interna del PDF).
func WithClock(now func() time.Time) Option {
	return func(g *BoletaGenerator) { g.now = now }
}

// WithCanvasFactory reemplaza el backend de dibujo.
func WithCanvasFactory(f CanvasFactory) Option {
	return func(g *BoletaGenerator) { g.newCanvas = f }
}

// NewBoletaGenerator construye el generador; por defecto dibuja con gofpdf.
func NewBoletaGenerator(opts ...Option) *BoletaGenerator {
	g := &BoletaGenerator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.newCanvas == nil {
		g.newCanvas = FpdfFactory(func() time.Time { return g.now() })
	}
	return g
}

// GenerateBoletaPDF dibuja la boleta en una página nueva y devuelve los bytes completos.
// Nunca devuelve un documento parcial: o bytes o error.
func (g *BoletaGenerator) GenerateBoletaPDF(
	ctx context.Context,
	customer entity.Customer,
	tx entity.Transaction,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := g.now()

	canvas := g.newCanvas(A4, DocumentInfo{
		Title:   documentTitle,
		Author:  senderName,
		Subject: tx.Name,
	})
	l := NewLayout(canvas, A4)

	header(l)
	customerInformation(l, customer, tx, now)
	invoiceTable(l, tx)
	footer(l)

	doc, err := canvas.Bytes()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta: %w", err)
	}
	return doc, nil
}
