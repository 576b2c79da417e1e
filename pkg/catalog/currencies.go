// Package catalog contiene los catálogos de referencia de la aplicación:
// monedas, países, reglas de impuesto por país y categorías de servicio.
// Son tablas inmutables cargadas al inicio del proceso; las búsquedas
// devuelven un marcador explícito de "no encontrado", nunca error.
package catalog

// Currency describe una moneda: código ISO 4217, símbolo, nombre y
// cantidad de decimales para presentación.
type Currency struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	DecimalDigits int32  `json:"decimal_digits"`
}

// Currencies monedas soportadas por el editor. La primera (USD) es la
// moneda por defecto de una sesión nueva.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", DecimalDigits: 2},
	{Code: "EUR", Symbol: "€", Name: "Euro", DecimalDigits: 2},
	{Code: "GBP", Symbol: "£", Name: "British Pound", DecimalDigits: 2},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", DecimalDigits: 2},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", DecimalDigits: 2},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", DecimalDigits: 2},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", DecimalDigits: 0},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", DecimalDigits: 2},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona", DecimalDigits: 2},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone", DecimalDigits: 2},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", DecimalDigits: 2},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", DecimalDigits: 2},
	{Code: "MXN", Symbol: "MX$", Name: "Mexican Peso", DecimalDigits: 2},
	{Code: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee", DecimalDigits: 2},
}

// DefaultCurrency moneda inicial de una sesión (USD).
func DefaultCurrency() Currency { return Currencies[0] }

// CurrencyByCode busca una moneda por código exacto.
// Devuelve (Currency{}, false) si el código no existe.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
