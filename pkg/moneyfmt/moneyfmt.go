// Package moneyfmt formatea montos en Lempiras (HNL) para mensajes de usuario
// y documentos (recibos, reportes). Usa el locale es-HN para separadores.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-HN"))

// Lempiras devuelve el monto con el símbolo "L" y dos decimales: "L 1,234.50".
func Lempiras(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("L %.2f", f)
}

// Plain devuelve el monto con dos decimales sin símbolo, para campos de documentos.
func Plain(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
