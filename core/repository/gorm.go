package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// DefaultPrimaryKey is the column returned as identity when a record sets it.
const DefaultPrimaryKey = "id"

// GormBackend inserts records into SQL tables through GORM.
type GormBackend struct {
	db         *gorm.DB
	primaryKey string
}

// NewGormBackend wraps an open GORM connection.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db, primaryKey: DefaultPrimaryKey}
}

// DB exposes the underlying connection for schema inspection.
func (b *GormBackend) DB() *gorm.DB {
	return b.db
}

// Handle returns a handle for table.
func (b *GormBackend) Handle(ctx context.Context, table string) (Handle, error) {
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	return &gormHandle{db: b.db, table: table, primaryKey: b.primaryKey}, nil
}

// Close closes the connection pool.
func (b *GormBackend) Close(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormHandle struct {
	db         *gorm.DB
	table      string
	primaryKey string
}

// InsertOne builds the INSERT with GORM in dry-run mode and executes it on the
// connection pool so the driver's LastInsertId can be read back.
func (h *gormHandle) InsertOne(ctx context.Context, rec map[string]any) (any, error) {
	values, err := columnValues(rec)
	if err != nil {
		return nil, err
	}

	stmt := h.db.Session(&gorm.Session{DryRun: true}).Table(h.table).Create(values)
	if stmt.Error != nil {
		return nil, fmt.Errorf("failed to build insert into %s: %w", h.table, stmt.Error)
	}

	res, err := h.db.ConnPool.ExecContext(ctx, stmt.Statement.SQL.String(), stmt.Statement.Vars...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", h.table, err)
	}

	if id, ok := rec[h.primaryKey]; ok && id != nil {
		return id, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read id inserted into %s: %w", h.table, err)
	}
	return id, nil
}

// columnValues copies rec, encoding nested objects and lists as JSON text.
func columnValues(rec map[string]any) (map[string]any, error) {
	values := make(map[string]any, len(rec))
	for k, v := range rec {
		switch v.(type) {
		case map[string]any, []any:
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("failed to encode column %s: %w", k, err)
			}
			values[k] = string(raw)
		default:
			values[k] = v
		}
	}
	return values, nil
}
