package pdf

import "errors"

type textOp struct {
	X, Y, Width float64
	Align       Align
	Text        string
	Style       FontStyle
	Size        float64
	Color       Color
}

type lineOp struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

// recorder Canvas de prueba que guarda cada primitiva con el estado vigente.
type recorder struct {
	style  FontStyle
	size   float64
	fill   Color
	stroke Color
	width  float64

	texts []textOp
	lines []lineOp
	info  DocumentInfo
	fail  error
}

func (r *recorder) SetFont(_ string, style FontStyle, size float64) { r.style, r.size = style, size }
func (r *recorder) SetTextColor(c Color)                            { r.fill = c }
func (r *recorder) SetStrokeColor(c Color)                          { r.stroke = c }
func (r *recorder) SetLineWidth(w float64)                          { r.width = w }

func (r *recorder) Text(x, y, width float64, align Align, s string) {
	r.texts = append(r.texts, textOp{X: x, Y: y, Width: width, Align: align, Text: s, Style: r.style, Size: r.size, Color: r.fill})
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, lineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: r.stroke, Width: r.width})
}

func (r *recorder) Bytes() ([]byte, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return []byte("%PDF-recorded"), nil
}

// find devuelve la primera primitiva de texto con ese contenido.
func (r *recorder) find(s string) (textOp, bool) {
	for _, op := range r.texts {
		if op.Text == s {
			return op, true
		}
	}
	return textOp{}, false
}

var errDraw = errors.New("fuente no disponible")
