package service

import (
	"context"
	"testing"

	"shifttrack/internal/dto"
	"shifttrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubAdminRepo records the calls the service routes to it.
type stubAdminRepo struct {
	queries      []string
	scripts      []string
	updatedValue interface{}
	affected     int64
}

func (r *stubAdminRepo) ListTables(_ context.Context) ([]string, error) {
	return []string{"shifts", "users"}, nil
}

func (r *stubAdminRepo) FetchTable(_ context.Context, table string, limit int) (*repository.TableData, error) {
	return &repository.TableData{Columns: []string{"id"}, Rows: []map[string]interface{}{}}, nil
}

func (r *stubAdminRepo) UpdateRecord(_ context.Context, _, _, _ string, value interface{}) (int64, error) {
	r.updatedValue = value
	return r.affected, nil
}

func (r *stubAdminRepo) DeleteRecord(_ context.Context, _, _ string) (int64, error) {
	return r.affected, nil
}

func (r *stubAdminRepo) RunQuery(_ context.Context, query string) ([]map[string]interface{}, error) {
	r.queries = append(r.queries, query)
	return []map[string]interface{}{{"count": 3}}, nil
}

func (r *stubAdminRepo) RunScript(_ context.Context, script string) error {
	r.scripts = append(r.scripts, script)
	return nil
}

var _ repository.AdminRepository = (*stubAdminRepo)(nil)

func TestAdminExecute_DestructiveNeedsConfirmation(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewAdminService(repo)

	for _, query := range []string{
		"DROP TABLE shifts",
		"truncate table users",
		"DELETE FROM shifts WHERE 1=1",
		"drop database shifttrack",
	} {
		_, err := svc.Execute(context.Background(), dto.ExecuteQueryRequest{Query: query})
		assert.ErrorContains(t, err, "set confirmed to true", "query: %s", query)
	}
	assert.Empty(t, repo.scripts)
	assert.Empty(t, repo.queries)
}

func TestAdminExecute_ConfirmedDestructiveRuns(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewAdminService(repo)

	resp, err := svc.Execute(context.Background(), dto.ExecuteQueryRequest{
		Query:     "DELETE FROM shifts WHERE date < '2020-01-01'",
		Confirmed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Query executed successfully", resp.Message)
	assert.Len(t, repo.scripts, 1)
}

func TestAdminExecute_SelectReturnsRows(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewAdminService(repo)

	resp, err := svc.Execute(context.Background(), dto.ExecuteQueryRequest{
		Query: "SELECT count(*) FROM shifts",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Empty(t, repo.scripts)
}

func TestAdminExecute_EmptyQueryRejected(t *testing.T) {
	svc := NewAdminService(&stubAdminRepo{})
	_, err := svc.Execute(context.Background(), dto.ExecuteQueryRequest{Query: "   "})
	assert.ErrorContains(t, err, "required")
}

func TestAdminGetTable_InvalidIdentifierRejected(t *testing.T) {
	svc := NewAdminService(&stubAdminRepo{})

	for _, name := range []string{"users; drop table users", "users--", "a b", ""} {
		_, err := svc.GetTable(context.Background(), name)
		assert.ErrorContains(t, err, "invalid table name", "name: %q", name)
	}
}

func TestAdminUpdateRecord_RehashesUserPasswords(t *testing.T) {
	repo := &stubAdminRepo{affected: 1}
	svc := NewAdminService(repo)

	err := svc.UpdateRecord(context.Background(), "users", "some-id", dto.UpdateRecordRequest{
		Column: "password",
		Value:  "hunter22",
	})
	require.NoError(t, err)

	stored, ok := repo.updatedValue.(string)
	require.True(t, ok)
	assert.NotEqual(t, "hunter22", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("hunter22")))
}

func TestAdminUpdateRecord_PlainColumnsPassThrough(t *testing.T) {
	repo := &stubAdminRepo{affected: 1}
	svc := NewAdminService(repo)

	err := svc.UpdateRecord(context.Background(), "shifts", "some-id", dto.UpdateRecordRequest{
		Column: "notes",
		Value:  "corrected",
	})
	require.NoError(t, err)
	assert.Equal(t, "corrected", repo.updatedValue)
}

func TestAdminUpdateRecord_ZeroRowsIsNotFound(t *testing.T) {
	svc := NewAdminService(&stubAdminRepo{affected: 0})

	err := svc.UpdateRecord(context.Background(), "shifts", "missing", dto.UpdateRecordRequest{
		Column: "notes",
		Value:  "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
