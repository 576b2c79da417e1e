package dto

// ErrorResponse error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateLayout formato de fecha de la API (solo día, sin zona).
const DateLayout = "2006-01-02"
