package dto

// SheetResult counts what happened to one worksheet
type SheetResult struct {
	Sheet    string   `json:"sheet"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportSummary reports a whole workbook import
type ImportSummary struct {
	Source       string        `json:"source"`
	Sheets       []SheetResult `json:"sheets"`
	Unrecognised []string      `json:"unrecognised,omitempty"`
}

// Total returns the imported and skipped row counts across all sheets
func (s *ImportSummary) Total() (imported, skipped int) {
	for _, sheet := range s.Sheets {
		imported += sheet.Imported
		skipped += sheet.Skipped
	}
	return imported, skipped
}
