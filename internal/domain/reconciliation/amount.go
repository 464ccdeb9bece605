package reconciliation

import (
	"strings"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ParseAmountToCents normalizes an external amount string to cents. The
// external system reports amounts in whatever locale the entry was typed in,
// so both "1.234,56" and "1,234.56" must come out as 123456. The decimal
// separator is whichever of ',' and '.' appears rightmost; the other is a
// thousands separator and is dropped.
func ParseAmountToCents(raw string) (int64, error) {
	s := stripCurrency(raw)
	if s == "" {
		return 0, shared.NewDomainError("INVALID_AMOUNT", "Amount string is empty")
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// European: '.' groups thousands, ',' is the decimal mark
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// US: ',' groups thousands
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		// A lone comma followed by a full 3-digit group reads as a
		// thousands separator ("1,234"); anything else is a decimal
		// mark ("750,00").
		if isThousandsGrouped(s, ",") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, shared.NewDomainError("INVALID_AMOUNT", "Cannot parse amount "+strings.TrimSpace(raw))
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// stripCurrency removes currency symbols, letters and whitespace, keeping
// digits, separators and a sign
func stripCurrency(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isThousandsGrouped reports whether every separator-delimited group after
// the first has exactly three digits, e.g. "1,234" or "1,234,567"
func isThousandsGrouped(s, sep string) bool {
	parts := strings.Split(strings.TrimPrefix(s, "-"), sep)
	if len(parts) < 2 {
		return false
	}
	for _, group := range parts[1:] {
		if len(group) != 3 {
			return false
		}
	}
	return true
}
