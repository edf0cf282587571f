// Package format converte valores de métricas em texto para exibição.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
	"JPY": "¥",
}

type scale struct {
	divisor float64
	suffix  string
}

var scales = []scale{{1e3, "K"}, {1e6, "M"}, {1e9, "B"}}

// Number abrevia números grandes com sufixos K, M e B (uma casa decimal).
// Valores abaixo de mil são exibidos com agrupamento e sem casas decimais.
// O sufixo é escolhido depois do arredondamento: 999950 vira 1.0M.
func Number(v float64) string {
	abs := math.Abs(v)
	if rounded(abs, 0) < 1e3 {
		return printer.Sprintf("%.0f", v)
	}

	i := 0
	for i < len(scales)-1 && abs >= scales[i+1].divisor {
		i++
	}
	if i < len(scales)-1 && rounded(abs/scales[i].divisor, 1) >= 1e3 {
		i++
	}

	return fmt.Sprintf("%.1f%s", v/scales[i].divisor, scales[i].suffix)
}

// rounded arredonda como a formatação com casas fixas
func rounded(v float64, decimals int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return r
}

// Percentage formata v (já em porcentagem) com o número de casas informado
func Percentage(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, v)
}

// Currency formata v com duas casas, separador de milhar e símbolo da moeda.
// Moedas sem símbolo conhecido usam o próprio código como prefixo.
func Currency(v float64, code string) string {
	code = strings.ToUpper(code)
	if code == "" {
		code = "USD"
	}

	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	return sign + symbol + printer.Sprintf("%.2f", v)
}

// Metric escolhe a formatação pelo tipo da métrica
func Metric(name string, v float64) string {
	switch name {
	case "ctr", "roi", "engagement":
		return Percentage(v, 2)
	case "cpc", "cpm", "spend", "revenue":
		return Currency(v, "USD")
	default:
		return Number(v)
	}
}
