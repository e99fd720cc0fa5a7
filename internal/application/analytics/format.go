package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var esPrinter = message.NewPrinter(language.Spanish)

// FormatMoney formatea un monto con separadores en español, ej: "$ 212.000,00".
func FormatMoney(d decimal.Decimal) string {
	return esPrinter.Sprintf("$ %.2f", d.Round(2).InexactFloat64())
}
