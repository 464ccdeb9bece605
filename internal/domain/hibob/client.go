package hibob

import "context"

// Client is the port to the external HR system's custom-table API. The
// employee is addressed by the HR system's own identifier, not our UUID.
type Client interface {
	// GetTableEntries lists the rows of a custom table for one employee
	GetTableEntries(ctx context.Context, employeeHibobID, tableID string) ([]TableEntry, error)
	// CreateTableEntry appends a row to a custom table
	CreateTableEntry(ctx context.Context, employeeHibobID, tableID string, values map[string]any) error
	// DeleteTableEntry removes a row from a custom table
	DeleteTableEntry(ctx context.Context, employeeHibobID, tableID, entryID string) error
}
