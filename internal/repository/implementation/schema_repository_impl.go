package implementation

import (
	"context"

	"roofing-site-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SchemaRepositoryImpl struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) contract.SchemaRepository {
	return &SchemaRepositoryImpl{db: db}
}

func (r *SchemaRepositoryImpl) HasColumn(ctx context.Context, table, column string) (bool, error) {
	var count int64
	if err := countColumn(r.db.WithContext(ctx), table, column, &count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddColumn quotes table and column; definition is trusted and must come from code.
func (r *SchemaRepositoryImpl) AddColumn(ctx context.Context, table, column, definition string) error {
	return addColumn(r.db.WithContext(ctx), table, column, definition).Error
}

func countColumn(tx *gorm.DB, table, column string, count *int64) *gorm.DB {
	return tx.Raw(
		`SELECT COUNT(*) FROM information_schema.columns WHERE table_schema = CURRENT_SCHEMA() AND table_name = ? AND column_name = ?`,
		table, column,
	).Scan(count)
}

func addColumn(tx *gorm.DB, table, column, definition string) *gorm.DB {
	return tx.Exec(
		"ALTER TABLE ? ADD COLUMN IF NOT EXISTS ? "+definition,
		clause.Table{Name: table},
		clause.Column{Name: column},
	)
}
