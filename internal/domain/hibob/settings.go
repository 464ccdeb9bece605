package hibob

import (
	"context"
	"strings"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
)

// Settings keys for the external expense table. The table id and column
// keys are deployment configuration; tolerances and business constants are
// deliberately not settings.
const (
	SettingExpenseTableID        = "hibob.expense_table_id"
	SettingExpenseColumnDate     = "hibob.expense_column_date"
	SettingExpenseColumnDesc     = "hibob.expense_column_description"
	SettingExpenseColumnAmount   = "hibob.expense_column_amount"
	SettingExpenseColumnCurrency = "hibob.expense_column_currency"
)

// TableConfig is the resolved expense table configuration for one sync run
type TableConfig struct {
	TableID string
	Mapping ColumnMapping
}

// ResolveTableConfig reads the expense table configuration once. Sync runs
// resolve it up front and carry the value, rather than re-reading settings
// per row.
func ResolveTableConfig(ctx context.Context, settings shared.SettingsProvider) (TableConfig, error) {
	tableID, err := settings.Get(ctx, SettingExpenseTableID)
	if err != nil {
		return TableConfig{}, err
	}
	if strings.TrimSpace(tableID) == "" {
		return TableConfig{}, shared.NewDomainError("TABLE_NOT_CONFIGURED", "Expense table ID is not configured")
	}

	mapping := ColumnMapping{}
	for _, kv := range []struct {
		key  string
		dest *string
	}{
		{SettingExpenseColumnDate, &mapping.DateKey},
		{SettingExpenseColumnDesc, &mapping.DescriptionKey},
		{SettingExpenseColumnAmount, &mapping.AmountKey},
		{SettingExpenseColumnCurrency, &mapping.CurrencyKey},
	} {
		v, err := settings.Get(ctx, kv.key)
		if err != nil {
			return TableConfig{}, err
		}
		*kv.dest = v
	}
	if err := mapping.Validate(); err != nil {
		return TableConfig{}, err
	}

	return TableConfig{TableID: tableID, Mapping: mapping}, nil
}
