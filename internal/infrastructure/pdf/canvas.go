package pdf

// Align alineación horizontal de un texto dentro de su ancho.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// FontStyle estilo de la fuente core (Helvetica).
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
)

// Color RGB 0-255.
type Color struct {
	R, G, B int
}

// Canvas es la capacidad de dibujo sobre una única página. Las coordenadas están en puntos
// tipográficos con origen en la esquina superior izquierda; y indica el borde superior del texto.
// Una implementación acumula errores internamente y los devuelve en Bytes.
type Canvas interface {
	SetFont(family string, style FontStyle, size float64)
	SetTextColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	Text(x, y, width float64, align Align, s string)
	Line(x1, y1, x2, y2 float64)
	Bytes() ([]byte, error)
}

// DocumentInfo metadatos del PDF.
type DocumentInfo struct {
	Title   string
	Author  string
	Subject string
}

// CanvasFactory crea un canvas nuevo (una página A4) por documento.
type CanvasFactory func(page PageSpec, info DocumentInfo) Canvas
