package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boletas-api/pkg/format"
)

// GenerateBoletaRequest body para POST /api/boletas.
// Los tres campos son obligatorios; se validan antes de dibujar o almacenar nada.
type GenerateBoletaRequest struct {
	Grupo   Group          `json:"grupo"`
	Usuario *UserRequest   `json:"usuario"`
	Accion  *ActionRequest `json:"accion"`
}

// UserRequest comprador. id (o email) se usa para nombrar el archivo.
type UserRequest struct {
	Nombre string `json:"nombre"`
	ID     string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// ActionRequest acción (propiedad) que se paga.
type ActionRequest struct {
	Nombre string `json:"nombre"`
	Precio Amount `json:"precio"`
	Pagado Amount `json:"pagado"`
}

// GenerateBoletaResponse respuesta 200 de POST /api/boletas.
type GenerateBoletaResponse struct {
	Message     string `json:"message"`
	URLDescarga string `json:"urlDescarga"`
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
}

// RefreshURLRequest body para POST /api/boletas/url.
type RefreshURLRequest struct {
	FileKey string `json:"fileKey"`
}

// RefreshURLResponse respuesta 200 de POST /api/boletas/url.
type RefreshURLResponse struct {
	Message     string `json:"message"`
	URLDescarga string `json:"urlDescarga"`
	Key         string `json:"key"`
}

// MessageResponse respuesta con solo un mensaje (400 y 404).
type MessageResponse struct {
	Message string `json:"message"`
}

// FailureResponse respuesta 500: mensaje genérico más el texto del error subyacente.
type FailureResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ── Tipos tolerantes ──────────────────────────────────────────────────────────

// UnmarshalJSON aplica a usuario y accion la misma regla de ausencia que a grupo:
// null, "", 0 y false cuentan como no enviados. Otros valores que no son objeto quedan vacíos.
func (r *GenerateBoletaRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Grupo   Group           `json:"grupo"`
		Usuario json.RawMessage `json:"usuario"`
		Accion  json.RawMessage `json:"accion"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	usuario, err := decodeOptional[UserRequest](raw.Usuario)
	if err != nil {
		return err
	}
	accion, err := decodeOptional[ActionRequest](raw.Accion)
	if err != nil {
		return err
	}
	*r = GenerateBoletaRequest{Grupo: raw.Grupo, Usuario: usuario, Accion: accion}
	return nil
}

func decodeOptional[T any](raw json.RawMessage) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if isAbsent(raw) {
		return nil, nil
	}
	v := new(T)
	if raw[0] != '{' {
		return v, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}

// isAbsent valores JSON que no cuentan como enviados.
func isAbsent(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	switch b[0] {
	case 'n', 'f':
		return true
	case 't', '{', '[':
		return false
	case '"':
		var s string
		return json.Unmarshal(b, &s) == nil && s == ""
	}
	d, err := decimal.NewFromString(string(b))
	return err == nil && d.IsZero()
}


// Group identificador del grupo: llega como string o como número.
type Group string

// UnmarshalJSON acepta string, número o booleano. Cero, false y null quedan vacíos.
func (g *Group) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*g = ""
		return nil
	case bytes.Equal(b, []byte("true")):
		*g = "true"
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*g = Group(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return err
	}
	if d.IsZero() {
		*g = ""
		return nil
	}
	*g = Group(d.String())
	return nil
}

// Amount monto tolerante: número o string numérico; cualquier otra cosa vale cero.
// Raw guarda el texto recibido cuando el monto llegó como string.
type Amount struct {
	decimal.Decimal
	Raw string
}

// NewAmount construye un Amount desde un entero.
func NewAmount(n int64) Amount { return Amount{Decimal: decimal.NewFromInt(n)} }

// UnmarshalJSON nunca falla: lo no numérico (objetos, null, texto) queda en cero.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = format.ToDecimal(v)
	if str, ok := v.(string); ok {
		a.Raw = str
	}
	return nil
}

// Label texto del monto tal como llegó: el string original o, si vino como número, su valor.
func (a Amount) Label() string {
	if a.Raw != "" {
		return a.Raw
	}
	return a.Decimal.String()
}

// MarshalJSON serializa como número JSON.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// ── Decodificación ────────────────────────────────────────────────────────────

// DecodeGenerateBoleta interpreta el body. Un body vacío equivale a "{}".
func DecodeGenerateBoleta(body []byte) (GenerateBoletaRequest, error) {
	var in GenerateBoletaRequest
	body, err := unwrapBody(body)
	if err != nil {
		return in, err
	}
	err = json.Unmarshal(body, &in)
	return in, err
}

// DecodeRefreshURL interpreta el body. Acepta también el JSON serializado dentro de un string.
func DecodeRefreshURL(body []byte) (RefreshURLRequest, error) {
	var in RefreshURLRequest
	body, err := unwrapBody(body)
	if err != nil {
		return in, err
	}
	err = json.Unmarshal(body, &in)
	return in, err
}

// unwrapBody normaliza body vacío a "{}" y desenvuelve un string JSON que contiene el objeto.
func unwrapBody(body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []byte("{}"), nil
	}
	if body[0] != '"' {
		return body, nil
	}
	var inner string
	if err := json.Unmarshal(body, &inner); err != nil {
		return nil, err
	}
	if strings.TrimSpace(inner) == "" {
		return []byte("{}"), nil
	}
	return []byte(inner), nil
}
