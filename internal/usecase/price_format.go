package usecase

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "R$ "

// FormatPrice renders a price as "R$ 12,345.67": two decimals with English
// digit grouping, the layout the web client expects.
func FormatPrice(price float64) string {
	return currencyPrefix + message.NewPrinter(language.English).Sprintf("%.2f", price)
}
