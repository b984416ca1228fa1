//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   - register → login → shift CRUD → weekly pay
//   - achievement check over seeded history
//   - CSV export/import round-trip
//   - admin console gating (403 for regular users, table list for admins)

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shifttrack/internal/config"
	"shifttrack/internal/infra"
	"shifttrack/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("shifttrack_test"),
		tcPostgres.WithUsername("shifttrack"),
		tcPostgres.WithPassword("shifttrack"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                   8000,
		Env:                    "test",
		JWTSecret:              "test-secret-key",
		JWTExpirationHours:     8,
		DatabaseURL:            pgURL,
		RedisURL:               rdURL,
		WorkerPoolSize:         1,
		InsightCacheTTLMinutes: 5,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, db: db}
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, env *testEnv, username string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/register",
		jsonBody(t, map[string]string{
			"username":  username,
			"password":  "secret123",
			"full_name": "Test " + username,
		}), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ShiftLifecycleAndWeeklyPay(t *testing.T) {
	env := setupTestEnv(t)
	token := registerUser(t, env, "lifecycle")

	// Create a shift: 8h at $20 minus a half-hour break = $150.
	createResp := do(t, env.server, "POST", "/api/shifts",
		jsonBody(t, map[string]any{
			"date":        "2026-08-24",
			"start_time":  "09:00",
			"end_time":    "17:00",
			"break_time":  0.5,
			"hourly_rate": 20,
		}), token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var shift struct {
		ID       string `json:"id"`
		TotalPay string `json:"total_pay"`
	}
	decodeJSON(t, createResp, &shift)
	assert.Equal(t, "150", shift.TotalPay)

	// Weekly pay for the Sunday-start week containing the shift.
	payResp := do(t, env.server, "GET", "/api/pay/weekly?week_start=2026-08-23", nil, token)
	require.Equal(t, http.StatusOK, payResp.StatusCode)
	var pay struct {
		Total string `json:"total"`
		Days  []struct {
			Date  string `json:"date"`
			Total string `json:"total"`
		} `json:"days"`
	}
	decodeJSON(t, payResp, &pay)
	assert.Equal(t, "150", pay.Total)
	require.Len(t, pay.Days, 7)
	assert.Equal(t, "150", pay.Days[1].Total) // Monday

	// Update start time → pay recomputed.
	updResp := do(t, env.server, "PUT", "/api/shifts/"+shift.ID,
		jsonBody(t, map[string]any{"start_time": "13:00"}), token)
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	var updated struct {
		TotalPay string `json:"total_pay"`
	}
	decodeJSON(t, updResp, &updated)
	assert.Equal(t, "70", updated.TotalPay) // 3.5h × $20

	// Delete, then 404 on the next read.
	delResp := do(t, env.server, "DELETE", "/api/shifts/"+shift.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
	getResp := do(t, env.server, "GET", "/api/shifts/"+shift.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestE2E_UserIsolation(t *testing.T) {
	env := setupTestEnv(t)
	owner := registerUser(t, env, "owner")
	other := registerUser(t, env, "other")

	createResp := do(t, env.server, "POST", "/api/shifts",
		jsonBody(t, map[string]any{
			"date": "2026-08-24", "start_time": "09:00", "end_time": "17:00", "hourly_rate": 20,
		}), owner)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var shift struct {
		ID string `json:"id"`
	}
	decodeJSON(t, createResp, &shift)

	// Another user's rows read as not-found, never as forbidden.
	resp := do(t, env.server, "GET", "/api/shifts/"+shift.ID, nil, other)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestE2E_AchievementCheck(t *testing.T) {
	env := setupTestEnv(t)
	token := registerUser(t, env, "achiever")

	// 10 shifts × 8h × $15 = 80 hours, $1200.
	for i := 1; i <= 10; i++ {
		resp := do(t, env.server, "POST", "/api/shifts",
			jsonBody(t, map[string]any{
				"date":        fmt.Sprintf("2026-08-%02d", i),
				"start_time":  "09:00",
				"end_time":    "17:00",
				"hourly_rate": 15,
			}), token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	checkResp := do(t, env.server, "POST", "/api/achievements/check", nil, token)
	require.Equal(t, http.StatusOK, checkResp.StatusCode)
	var check struct {
		NewAchievements []struct {
			Title string `json:"title"`
		} `json:"newAchievements"`
	}
	decodeJSON(t, checkResp, &check)

	titles := make([]string, len(check.NewAchievements))
	for i, a := range check.NewAchievements {
		titles[i] = a.Title
	}
	assert.Contains(t, titles, "50 Hours Worked")
	assert.Contains(t, titles, "First $1000 Earned")
	assert.Contains(t, titles, "10 Shifts Completed")

	// Re-checking unlocks nothing new.
	again := do(t, env.server, "POST", "/api/achievements/check", nil, token)
	require.Equal(t, http.StatusOK, again.StatusCode)
	var second struct {
		Count int `json:"count"`
	}
	decodeJSON(t, again, &second)
	assert.Zero(t, second.Count)
}

func TestE2E_BackupRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	exporter := registerUser(t, env, "exporter")
	importer := registerUser(t, env, "importer")

	resp := do(t, env.server, "POST", "/api/shifts",
		jsonBody(t, map[string]any{
			"date": "2026-08-24", "start_time": "09:00", "end_time": "17:00", "hourly_rate": 20,
		}), exporter)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	expResp := do(t, env.server, "GET", "/api/backup/export", nil, exporter)
	require.Equal(t, http.StatusOK, expResp.StatusCode)
	var csvData bytes.Buffer
	_, err := csvData.ReadFrom(expResp.Body)
	expResp.Body.Close()
	require.NoError(t, err)

	// Upload the same CSV as a different user.
	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	fw, err := mw.CreateFormFile("file", "shifts.csv")
	require.NoError(t, err)
	_, err = fw.Write(csvData.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", env.server.URL+"/api/backup/import", &form)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+importer)
	impResp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, impResp.StatusCode)
	var result struct {
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	}
	decodeJSON(t, impResp, &result)
	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Skipped)
}

func TestE2E_AdminConsoleGating(t *testing.T) {
	env := setupTestEnv(t)
	regular := registerUser(t, env, "regular")

	resp := do(t, env.server, "GET", "/api/admin/tables", nil, regular)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Promote a user and log in again to pick up the admin claim.
	_ = registerUser(t, env, "boss")
	require.NoError(t, env.db.Exec(`UPDATE users SET is_admin = true WHERE username = 'boss'`).Error)

	loginResp := do(t, env.server, "POST", "/api/login",
		jsonBody(t, map[string]string{"username": "boss", "password": "secret123"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &login)

	tablesResp := do(t, env.server, "GET", "/api/admin/tables", nil, login.AccessToken)
	require.Equal(t, http.StatusOK, tablesResp.StatusCode)
	var tables struct {
		Tables []string `json:"tables"`
	}
	decodeJSON(t, tablesResp, &tables)
	assert.Contains(t, tables.Tables, "shifts")
	assert.Contains(t, tables.Tables, "users")

	// Destructive statements require explicit confirmation.
	execResp := do(t, env.server, "POST", "/api/admin/execute",
		jsonBody(t, map[string]any{"query": "DELETE FROM shifts"}), login.AccessToken)
	assert.Equal(t, http.StatusBadRequest, execResp.StatusCode)
}
