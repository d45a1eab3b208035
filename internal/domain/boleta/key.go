// Package boleta reúne las reglas puras para ubicar una boleta en el almacenamiento.
package boleta

import (
	"fmt"
	"strings"
	"time"
)

// KeyPrefix carpeta raíz de todas las boletas dentro del bucket.
const KeyPrefix = "boletas"

// ContentType de los archivos almacenados.
const ContentType = "application/pdf"

// SafeToken reemplaza por "_" todo carácter fuera de [A-Za-z0-9._-].
// Es idempotente: SafeToken(SafeToken(s)) == SafeToken(s).
func SafeToken(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}

// ObjectKey arma boletas/{grupo}/{usuario}-{epochMillis}.pdf con ambos segmentos saneados.
func ObjectKey(group, user string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s-%d.pdf", KeyPrefix, SafeToken(group), SafeToken(user), at.UnixMilli())
}
