// Package format renders amounts and dates in the es-ES conventions used on
// printed documents.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "€"
	placeholder    = "—"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Currency formats 12100 as "12.100,00 €".
func Currency(value decimal.Decimal) string {
	return Amount(value) + " " + CurrencySymbol
}

// Amount formats a value with thousands separators and two decimals.
func Amount(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := group(intPart) + "," + fracPart
	if negative && strings.Trim(out, "0.,") != "" {
		return "-" + out
	}
	return out
}

// Percent drops the decimals for whole values: 21 -> "21 %", 7.5 -> "7,50 %".
func Percent(value decimal.Decimal) string {
	if value.Equal(value.Truncate(0)) {
		return value.Truncate(0).String() + " %"
	}
	return strings.Replace(value.StringFixed(2), ".", ",", 1) + " %"
}

// Integer formats whole numbers with thousands separators.
func Integer(value int) string {
	s := strconv.Itoa(value)
	if value < 0 {
		return "-" + group(s[1:])
	}
	return group(s)
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// LongDate formats body-text dates: "5 de marzo de 2025".
func LongDate(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return strconv.Itoa(t.Day()) + " de " + monthNames[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}

func ShortDate(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Format("02/01/2006")
}

// Value returns the placeholder dash for blank values.
func Value(value string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
