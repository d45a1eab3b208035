package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// lineHeight factor sobre el tamaño de fuente para el alto de cada celda de texto.
const lineHeight = 1.15

// FpdfCanvas implementa Canvas sobre gofpdf con una sola página, unidades en puntos
// y sin salto de página automático.
type FpdfCanvas struct {
	pdf  *gofpdf.Fpdf
	size float64
	enc  *encoding.Encoder
}

// NewFpdfCanvas crea el documento y agrega la página. createdAt fija la fecha interna del PDF.
func NewFpdfCanvas(page PageSpec, info DocumentInfo, createdAt time.Time) *FpdfCanvas {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	p.SetMargins(page.Margin, page.Margin, page.Margin)
	p.SetAutoPageBreak(false, 0)
	p.SetCellMargin(0)
	p.SetTitle(info.Title, true)
	p.SetAuthor(info.Author, true)
	p.SetSubject(info.Subject, true)
	p.SetCreator("boletas-api", true)
	if !createdAt.IsZero() {
		p.SetCreationDate(createdAt)
	}
	p.AddPage()

	c := &FpdfCanvas{
		pdf: p,
		// Las fuentes core de PDF usan cp1252: tildes y ñ se transcodifican, lo demás se reemplaza.
		enc: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
	c.SetFont(defaultFontName, FontRegular, 12)
	c.SetTextColor(Color{})
	return c
}

// FpdfFactory CanvasFactory de producción; clock fija la fecha de creación del documento.
func FpdfFactory(clock func() time.Time) CanvasFactory {
	return func(page PageSpec, info DocumentInfo) Canvas {
		return NewFpdfCanvas(page, info, clock())
	}
}

func (c *FpdfCanvas) SetFont(family string, style FontStyle, size float64) {
	c.size = size
	c.pdf.SetFont(family, string(style), size)
}

func (c *FpdfCanvas) SetTextColor(col Color) { c.pdf.SetTextColor(col.R, col.G, col.B) }

func (c *FpdfCanvas) SetStrokeColor(col Color) { c.pdf.SetDrawColor(col.R, col.G, col.B) }

func (c *FpdfCanvas) SetLineWidth(w float64) { c.pdf.SetLineWidth(w) }

func (c *FpdfCanvas) Text(x, y, width float64, align Align, s string) {
	if s == "" {
		return
	}
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(width, c.size*lineHeight, c.encode(s), "", 0, alignStr(align), false, 0, "")
}

func (c *FpdfCanvas) Line(x1, y1, x2, y2 float64) { c.pdf.Line(x1, y1, x2, y2) }

// Bytes cierra el documento y devuelve el PDF completo, o el primer error de dibujo.
func (c *FpdfCanvas) Bytes() ([]byte, error) {
	if err := c.pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: dibujar documento: %w", err)
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar documento: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *FpdfCanvas) encode(s string) string {
	out, _, err := transform.String(c.enc, s)
	if err != nil {
		return s
	}
	return out
}

// alignStr alineación gofpdf: horizontal + "T" para que y sea el borde superior del texto.
func alignStr(a Align) string {
	switch a {
	case AlignRight:
		return "RT"
	case AlignCenter:
		return "CT"
	default:
		return "LT"
	}
}
