package service

// admin_service.go
// Thin, guarded passthrough to the database for the admin console. Structured
// table access validates identifiers against a strict allow-list pattern;
// raw execution blocks destructive statements unless explicitly confirmed.

import (
	"context"
	"strings"

	"shifttrack/internal/dto"
	"shifttrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const adminRowLimit = 100

// destructiveKeywords require the confirmed flag before execution.
var destructiveKeywords = []string{"drop table", "truncate table", "delete from", "drop database"}

type AdminService interface {
	ListTables(ctx context.Context) (*dto.TableListResponse, error)
	GetTable(ctx context.Context, table string) (*repository.TableData, error)
	UpdateRecord(ctx context.Context, table, id string, req dto.UpdateRecordRequest) error
	DeleteRecord(ctx context.Context, table, id string) error
	Execute(ctx context.Context, req dto.ExecuteQueryRequest) (*dto.ExecuteQueryResponse, error)
	Migrate(ctx context.Context, script string) error
}

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) ListTables(ctx context.Context) (*dto.TableListResponse, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TableListResponse{Tables: tables}, nil
}

func (s *adminService) GetTable(ctx context.Context, table string) (*repository.TableData, error) {
	if !repository.ValidIdentifier(table) {
		return nil, invalid("invalid table name")
	}
	data, err := s.repo.FetchTable(ctx, table, adminRowLimit)
	if err != nil {
		return nil, notFound(err)
	}
	return data, nil
}

func (s *adminService) UpdateRecord(ctx context.Context, table, id string, req dto.UpdateRecordRequest) error {
	if !repository.ValidIdentifier(table) || !repository.ValidIdentifier(req.Column) {
		return invalid("invalid table or column name")
	}

	value := req.Value
	// Password values are never stored as given; they are re-hashed.
	if table == "users" && (req.Column == "password_hash" || req.Column == "password") {
		raw, ok := value.(string)
		if !ok {
			return invalid("password value must be a string")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(raw), 12)
		if err != nil {
			return err
		}
		value = string(hash)
	}

	affected, err := s.repo.UpdateRecord(ctx, table, req.Column, id, value)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *adminService) DeleteRecord(ctx context.Context, table, id string) error {
	if !repository.ValidIdentifier(table) {
		return invalid("invalid table name")
	}
	affected, err := s.repo.DeleteRecord(ctx, table, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *adminService) Execute(ctx context.Context, req dto.ExecuteQueryRequest) (*dto.ExecuteQueryResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, invalid("query is required")
	}

	if kw := destructiveKeyword(query); kw != "" && !req.Confirmed {
		return nil, invalid("query contains %q; set confirmed to true to execute", kw)
	}

	lowered := strings.ToLower(query)
	if strings.HasPrefix(lowered, "select") || strings.HasPrefix(lowered, "with") {
		rows, err := s.repo.RunQuery(ctx, query)
		if err != nil {
			return nil, err
		}
		return &dto.ExecuteQueryResponse{Rows: rows}, nil
	}

	if err := s.repo.RunScript(ctx, query); err != nil {
		return nil, err
	}
	return &dto.ExecuteQueryResponse{Message: "Query executed successfully"}, nil
}

func (s *adminService) Migrate(ctx context.Context, script string) error {
	if strings.TrimSpace(script) == "" {
		return invalid("script is required")
	}
	return s.repo.RunScript(ctx, script)
}

// destructiveKeyword reports the first guarded keyword found in the query.
func destructiveKeyword(query string) string {
	lowered := strings.ToLower(query)
	for _, kw := range destructiveKeywords {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return ""
}
