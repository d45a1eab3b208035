// Package format convierte montos y fechas a su representación impresa en la boleta (es-CL).
package format

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol se antepone a todo monto formateado.
const CurrencySymbol = "$"

// Currency formatea v como peso chileno sin decimales: "$1.234.567".
// Acepta cualquier valor numérico (o string numérico); lo que no sea número se trata como cero.
// El redondeo es al entero más cercano, alejándose de cero en los .5.
func Currency(v any) string {
	amount := ToDecimal(v).Round(0)
	digits := amount.Abs().StringFixed(0)

	var b strings.Builder
	b.WriteString(CurrencySymbol)
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(digits))
	return b.String()
}

// Date devuelve la fecha como D/M/YYYY, sin ceros a la izquierda.
func Date(t time.Time) string {
	return strconv.Itoa(t.Day()) + "/" + strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Year())
}

// ToDecimal coerciona v a decimal. nil, NaN, ±Inf y cualquier valor no numérico devuelven cero.
func ToDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case json.Number:
		return parseDecimal(string(n))
	case string:
		return parseDecimal(n)
	case bool:
		// Number(true) === 1
		if n {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float())
	case reflect.Pointer:
		if rv.IsNil() {
			return decimal.Zero
		}
		return ToDecimal(rv.Elem().Interface())
	}
	return decimal.Zero
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// groupThousands inserta puntos de miles en un string numérico sin signo ni decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
