package pdf

// PageSpec dimensiones de la página en puntos.
type PageSpec struct {
	Width  float64
	Height float64
	Margin float64
}

// A4 con márgenes de 50pt. Es una restricción de diseño, no configurable.
var A4 = PageSpec{Width: 595.28, Height: 841.89, Margin: 50}

// ContentRight borde derecho del área útil.
func (p PageSpec) ContentRight() float64 { return p.Width - p.Margin }

// column una celda de la fila de tabla. Width 0 = hasta el margen derecho.
type column struct {
	X     float64
	Width float64
	Align Align
}

// tableColumns coordenadas de las cinco columnas de la tabla. La semántica es posicional.
var tableColumns = [5]column{
	{X: 50},
	{X: 150},
	{X: 280, Width: 90, Align: AlignRight},
	{X: 370, Width: 90, Align: AlignRight},
	{X: 0, Align: AlignRight},
}

// Regla horizontal: color, grosor y extremos fijos.
var (
	ruleColor       = Color{R: 0xaa, G: 0xaa, B: 0xaa}
	ruleWidth       = 1.0
	ruleX1, ruleX2  = 50.0, 550.0
	tableFontSize   = 10.0
	defaultFontName = "Helvetica"
)

// Layout envuelve un Canvas con las primitivas de la boleta y el estado de fuente actual.
type Layout struct {
	c    Canvas
	page PageSpec

	size  float64
	style FontStyle
}

// NewLayout prepara el layout sobre c con Helvetica 12.
func NewLayout(c Canvas, page PageSpec) *Layout {
	l := &Layout{c: c, page: page}
	l.Font(FontRegular, 12)
	return l
}

// Font cambia estilo y tamaño de la fuente.
func (l *Layout) Font(style FontStyle, size float64) {
	l.style, l.size = style, size
	l.c.SetFont(defaultFontName, style, size)
}

// FontSize cambia solo el tamaño.
func (l *Layout) FontSize(size float64) { l.Font(l.style, size) }

// Style cambia solo el estilo.
func (l *Layout) Style(style FontStyle) { l.Font(style, l.size) }

// TextColor cambia el color de relleno del texto (persiste para los textos siguientes).
func (l *Layout) TextColor(c Color) { l.c.SetTextColor(c) }

// Text escribe s con borde superior en y. Con width 0 el texto ocupa hasta el margen derecho.
func (l *Layout) Text(s string, x, y float64, width float64, align Align) {
	if width <= 0 {
		width = l.page.ContentRight() - x
	}
	l.c.Text(x, y, width, align, s)
}

// HorizontalRule traza la línea separadora gris de 50 a 550 en y.
func (l *Layout) HorizontalRule(y float64) {
	l.c.SetStrokeColor(ruleColor)
	l.c.SetLineWidth(ruleWidth)
	l.c.Line(ruleX1, y, ruleX2, y)
}

// TableRow escribe las cinco celdas en las columnas fijas. Las celdas vacías se dibujan igual.
func (l *Layout) TableRow(y float64, cells [5]string) {
	l.FontSize(tableFontSize)
	for i, col := range tableColumns {
		l.Text(cells[i], col.X, y, col.Width, col.Align)
	}
}
