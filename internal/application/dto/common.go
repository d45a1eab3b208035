package dto

// ErrorResponse cuerpo de error HTTP con código estable (rutas fuera del contrato de boletas).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
