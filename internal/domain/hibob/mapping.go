package hibob

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
)

// ColumnMapping names the configured column keys of the external expense
// table. The keys are deployment configuration, not fixed field names, so
// they are resolved once per sync run and carried as a value.
type ColumnMapping struct {
	DateKey        string
	DescriptionKey string
	AmountKey      string
	CurrencyKey    string
}

// Validate checks that every column key is configured
func (m ColumnMapping) Validate() error {
	if strings.TrimSpace(m.DateKey) == "" ||
		strings.TrimSpace(m.DescriptionKey) == "" ||
		strings.TrimSpace(m.AmountKey) == "" ||
		strings.TrimSpace(m.CurrencyKey) == "" {
		return shared.NewDomainError("TABLE_NOT_CONFIGURED", "Expense table column mapping is not fully configured")
	}
	return nil
}

// TableEntry is one raw row of an external table. Values are keyed by the
// configured column names and arrive as untyped JSON values.
type TableEntry struct {
	ID     string
	Values map[string]any
}

// Entry is a normalized expense row extracted from a TableEntry
type Entry struct {
	ID          string
	Date        time.Time
	Description string
	Amount      string
	Currency    string
}

const entryDateLayout = "2006-01-02"

// Extract normalizes a raw table row using the configured column keys. The
// amount column may hold a plain string, a number, or a {value, currency}
// object depending on how the external column is typed.
func (m ColumnMapping) Extract(row TableEntry) (Entry, error) {
	if err := m.Validate(); err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(row.ID) == "" {
		return Entry{}, shared.NewDomainError("INVALID_ENTRY", "External entry has no ID")
	}

	rawDate := stringValue(row.Values[m.DateKey])
	date, err := time.Parse(entryDateLayout, rawDate)
	if err != nil {
		return Entry{}, shared.NewDomainError("INVALID_ENTRY", fmt.Sprintf("Cannot parse entry date %q", rawDate))
	}

	amount, currency := normalizeAmount(row.Values[m.AmountKey])
	if currency == "" {
		currency = stringValue(row.Values[m.CurrencyKey])
	}

	return Entry{
		ID:          row.ID,
		Date:        date,
		Description: stringValue(row.Values[m.DescriptionKey]),
		Amount:      amount,
		Currency:    currency,
	}, nil
}

// normalizeAmount flattens the amount column to a string. A {value, currency}
// object also yields the embedded currency.
func normalizeAmount(v any) (amount, currency string) {
	switch t := v.(type) {
	case map[string]any:
		return stringValue(t["value"]), stringValue(t["currency"])
	default:
		return stringValue(v), ""
	}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
