package contract

import "context"

type SchemaRepository interface {
	HasColumn(ctx context.Context, table, column string) (bool, error)
	// AddColumn must be a no-op when the column already exists.
	AddColumn(ctx context.Context, table, column, definition string) error
}
