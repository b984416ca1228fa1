package infra

// pdf.go — monthly pay statement generation using go-pdf/fpdf.
// One row per shift (date, times, break, rate, pay) with a bold totals line.
// The document is rendered into memory and streamed as a download.

import (
	"bytes"
	"fmt"

	"shifttrack/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GeneratePayReportPDF renders a statement for one calendar month of shifts.
// hours must be positionally aligned with shifts (recomputed worked hours).
func GeneratePayReportPDF(fullName, monthLabel string, shifts []model.Shift, hours []decimal.Decimal) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "ShiftTrack", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	// Core fonts are cp1252; stick to ASCII in literals.
	pdf.CellFormat(contentW, 6, "Pay Statement - "+monthLabel, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, fullName, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	colDate := contentW * 0.18
	colTime := contentW * 0.24
	colBreak := contentW * 0.14
	colHours := contentW * 0.14
	colRate := contentW * 0.14
	colPay := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colDate, 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colTime, 6, "Time", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colBreak, 6, "Break (h)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colHours, 6, "Hours", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colRate, 6, "Rate", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colPay, 6, "Pay", "B", 1, "R", false, 0, "")

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	totalHours := decimal.Zero
	totalPay := decimal.Zero
	for i, s := range shifts {
		h := decimal.Zero
		if i < len(hours) {
			h = hours[i]
		}
		totalHours = totalHours.Add(h)
		totalPay = totalPay.Add(s.TotalPay)

		pdf.CellFormat(colDate, 6, s.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(colTime, 6, fmt.Sprintf("%s - %s", s.StartTime, s.EndTime), "", 0, "L", false, 0, "")
		pdf.CellFormat(colBreak, 6, s.BreakTime.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colHours, 6, h.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colRate, 6, "$"+s.HourlyRate.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colPay, 6, "$"+s.TotalPay.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colDate+colTime+colBreak, 7, fmt.Sprintf("%d shifts", len(shifts)), "", 0, "L", false, 0, "")
	pdf.CellFormat(colHours, 7, totalHours.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(colRate, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colPay, 7, "$"+totalPay.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render statement: %w", err)
	}
	return buf.Bytes(), nil
}
