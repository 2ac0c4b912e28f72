package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical display prefix, as rendered in every price column.
const rupiahPrefix = "Rp. "

// FormatRupiah renders an integer amount in canonical display form,
// e.g. 8000000 -> "Rp. 8.000.000".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + rupiahPrefix + groupThousands(strconv.FormatInt(amount, 10))
}

// NormalizeRupiah turns arbitrary price input into canonical display form:
// every non-digit is dropped, the rest is regrouped and prefixed. It is the
// rule applied on create and update, so "8000000", "8.000.000" and
// "Rp. 8.000.000" all normalize to the same string.
func NormalizeRupiah(s string) string {
	return rupiahPrefix + groupThousands(DigitsOnly(s))
}

// StripRupiah de-formats a display price back to bare digits for editing:
// "Rp. 8.000.000" -> "8000000".
func StripRupiah(s string) string {
	return DigitsOnly(s)
}

// TrimRupiahPrefix removes only the currency prefix, keeping grouping:
// "Rp. 8.000.000" -> "8.000.000". Used when a room price pre-fills the
// booking form.
func TrimRupiahPrefix(s string) string {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(t), "rp") {
		t = t[2:]
		t = strings.TrimPrefix(t, ".")
		t = strings.TrimSpace(t)
	}
	return t
}

// ParseRupiahToInt parses "Rp. 1.000" or "1,000" into an integer amount.
func ParseRupiahToInt(s string) (int64, error) {
	digits := DigitsOnly(s)
	if digits == "" {
		return 0, fmt.Errorf("invalid rupiah amount %q", s)
	}
	return strconv.ParseInt(digits, 10, 64)
}

// DigitsOnly keeps the decimal digits of s, in order.
func DigitsOnly(s string) string {
	var out strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			out.WriteRune(c)
		}
	}
	return out.String()
}

func groupThousands(digits string) string {
	if digits == "" {
		return ""
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
