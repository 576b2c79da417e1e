package catalog

// Country describe un país seleccionable: código ISO 3166-1 alfa-2,
// nombre y moneda por defecto.
type Country struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	DefaultCurrency string `json:"default_currency"`
}

// Countries países soportados por el editor.
var Countries = []Country{
	{Code: "US", Name: "United States", DefaultCurrency: "USD"},
	{Code: "GB", Name: "United Kingdom", DefaultCurrency: "GBP"},
	{Code: "DE", Name: "Germany", DefaultCurrency: "EUR"},
	{Code: "FR", Name: "France", DefaultCurrency: "EUR"},
	{Code: "NL", Name: "Netherlands", DefaultCurrency: "EUR"},
	{Code: "BE", Name: "Belgium", DefaultCurrency: "EUR"},
	{Code: "AT", Name: "Austria", DefaultCurrency: "EUR"},
	{Code: "IT", Name: "Italy", DefaultCurrency: "EUR"},
	{Code: "ES", Name: "Spain", DefaultCurrency: "EUR"},
	{Code: "PT", Name: "Portugal", DefaultCurrency: "EUR"},
	{Code: "IE", Name: "Ireland", DefaultCurrency: "EUR"},
	{Code: "FI", Name: "Finland", DefaultCurrency: "EUR"},
	{Code: "GR", Name: "Greece", DefaultCurrency: "EUR"},
	{Code: "CA", Name: "Canada", DefaultCurrency: "CAD"},
	{Code: "AU", Name: "Australia", DefaultCurrency: "AUD"},
	{Code: "IN", Name: "India", DefaultCurrency: "INR"},
	{Code: "JP", Name: "Japan", DefaultCurrency: "JPY"},
	{Code: "SG", Name: "Singapore", DefaultCurrency: "SGD"},
	{Code: "SE", Name: "Sweden", DefaultCurrency: "SEK"},
	{Code: "NO", Name: "Norway", DefaultCurrency: "NOK"},
	{Code: "CH", Name: "Switzerland", DefaultCurrency: "CHF"},
	{Code: "BR", Name: "Brazil", DefaultCurrency: "BRL"},
	{Code: "MX", Name: "Mexico", DefaultCurrency: "MXN"},
	{Code: "LK", Name: "Sri Lanka", DefaultCurrency: "LKR"},
}

// CountryByCode busca un país por código exacto.
// Devuelve (Country{}, false) si el código no existe.
func CountryByCode(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}
