package repository

import (
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// identRe matches safe SQL identifiers. Table and column names coming from
// the admin console are interpolated into queries, so anything else is rejected.
var identRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func ValidIdentifier(s string) bool { return identRe.MatchString(s) }

type TableData struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

type AdminRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	FetchTable(ctx context.Context, table string, limit int) (*TableData, error)
	UpdateRecord(ctx context.Context, table, column, id string, value interface{}) (int64, error)
	DeleteRecord(ctx context.Context, table, id string) (int64, error)
	RunQuery(ctx context.Context, query string) ([]map[string]interface{}, error)
	RunScript(ctx context.Context, script string) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepo{db: db} }

func (r *adminRepo) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT table_name FROM information_schema.tables
		     WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		     ORDER BY table_name`).
		Scan(&tables).Error
	return tables, err
}

func (r *adminRepo) FetchTable(ctx context.Context, table string, limit int) (*TableData, error) {
	if !ValidIdentifier(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	var columns []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT column_name FROM information_schema.columns
		     WHERE table_schema = 'public' AND table_name = ?
		     ORDER BY ordinal_position`, table).
		Scan(&columns).Error
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	rows := make([]map[string]interface{}, 0)
	err = r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT * FROM %s LIMIT ?", table), limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return &TableData{Columns: columns, Rows: rows}, nil
}

func (r *adminRepo) UpdateRecord(ctx context.Context, table, column, id string, value interface{}) (int64, error) {
	if !ValidIdentifier(table) || !ValidIdentifier(column) {
		return 0, fmt.Errorf("invalid identifier")
	}
	res := r.db.WithContext(ctx).
		Exec(fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", table, column), value, id)
	return res.RowsAffected, res.Error
}

func (r *adminRepo) DeleteRecord(ctx context.Context, table, id string) (int64, error) {
	if !ValidIdentifier(table) {
		return 0, fmt.Errorf("invalid identifier")
	}
	res := r.db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	return res.RowsAffected, res.Error
}

func (r *adminRepo) RunQuery(ctx context.Context, query string) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *adminRepo) RunScript(ctx context.Context, script string) error {
	return r.db.WithContext(ctx).Exec(script).Error
}
