package dto

// ImportResult reports the outcome of a CSV import. Errors are row-numbered
// so the user can fix the file and retry.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}
