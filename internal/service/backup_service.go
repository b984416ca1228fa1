package service

// backup_service.go
// CSV export/import of shifts. Import recomputes total pay from the raw
// inputs, never trusting the value in the file, and reports row-numbered
// errors so a partially bad file can be fixed and retried.

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var csvHeader = []string{"date", "start_time", "end_time", "break_time", "hourly_rate", "notes", "total_pay"}

type BackupService interface {
	ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error)
	ImportCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (*dto.ImportResult, error)
}

type backupService struct {
	shifts repository.ShiftRepository
}

func NewBackupService(shifts repository.ShiftRepository) BackupService {
	return &backupService{shifts: shifts}
}

func (s *backupService) ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	shifts, err := s.shifts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, sh := range shifts {
		notes := ""
		if sh.Notes != nil {
			notes = *sh.Notes
		}
		record := []string{
			sh.Date,
			sh.StartTime,
			sh.EndTime,
			sh.BreakTime.String(),
			sh.HourlyRate.String(),
			notes,
			sh.TotalPay.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *backupService) ImportCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, invalid("empty or unreadable CSV file")
	}
	col := columnIndex(header)
	for _, required := range []string{"date", "start_time", "end_time", "hourly_rate"} {
		if _, ok := col[required]; !ok {
			return nil, invalid("missing required column %q", required)
		}
	}

	result := &dto.ImportResult{Errors: []string{}}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		shift, err := parseShiftRow(record, col, userID)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if err := s.shifts.Create(ctx, shift); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: save failed", row))
			continue
		}
		result.Imported++
	}

	if result.Imported == 0 {
		return result, invalid("no valid rows could be imported")
	}
	return result, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return col
}

func parseShiftRow(record []string, col map[string]int, userID uuid.UUID) (*model.Shift, error) {
	field := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date := field("date")
	if _, err := paycalc.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	breakTime := decimal.Zero
	if raw := field("break_time"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return nil, fmt.Errorf("invalid break_time %q", raw)
		}
		breakTime = parsed
	}

	rate, err := decimal.NewFromString(field("hourly_rate"))
	if err != nil {
		return nil, fmt.Errorf("invalid hourly_rate %q", field("hourly_rate"))
	}

	start, end := field("start_time"), field("end_time")
	hours, err := paycalc.WorkedHours(start, end, breakTime)
	if err != nil {
		return nil, err
	}

	var notes *string
	if n := field("notes"); n != "" {
		notes = &n
	}

	// total_pay in the file is ignored; it is always recomputed.
	return &model.Shift{
		UserID:     userID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		BreakTime:  breakTime,
		HourlyRate: rate,
		TotalPay:   paycalc.TotalPay(hours, rate),
		Notes:      notes,
	}, nil
}
