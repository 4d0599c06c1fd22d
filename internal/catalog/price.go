package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceOnRequest is shown whenever a price is missing, zero or unparseable.
const PriceOnRequest = "Fiyat Sorunuz"

const currencySuffix = " ₺"

var prices = message.NewPrinter(language.Turkish)

// FormatPrice renders a raw price cell as a Turkish-grouped currency string:
// "1500" becomes "1.500 ₺", "899,90" becomes "899,9 ₺". Unset prices (empty,
// zero, or not a number) become the PriceOnRequest sentinel. This is the
// single source of truth for price display; list and detail views both go
// through it.
func FormatPrice(raw string) string {
	d, ok := parsePrice(raw)
	if !ok || d.IsZero() {
		return PriceOnRequest
	}

	if d.IsInteger() {
		return prices.Sprintf("%v", number.Decimal(d.IntPart())) + currencySuffix
	}

	f, _ := d.Round(2).Float64()
	return prices.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2))) + currencySuffix
}

// zeroOrEmpty reports whether a raw price cell means "unset". Discount
// presence and the sentinel label share this definition.
func zeroOrEmpty(raw string) bool {
	d, ok := parsePrice(raw)
	return !ok || d.IsZero()
}

// parsePrice mirrors the sheet's lenient numeric convention: the first comma
// is a decimal separator, everything except digits and dots is stripped, and
// reading stops at a second dot, so a thousands-separated "1.500,00" source
// that lost its comma reads as 1.5 rather than failing.
func parsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)

	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if (s[i] >= '0' && s[i] <= '9') || s[i] == '.' {
			clean = append(clean, s[i])
		}
	}

	end, dot := 0, false
	for ; end < len(clean); end++ {
		if clean[end] == '.' {
			if dot {
				break
			}
			dot = true
		}
	}

	num := string(clean[:end])
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
