package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// excel serials outside this window are treated as plain numbers, not dates
const (
	minDateSerial = 20000
	maxDateSerial = 80000
)

// dayFirstLayouts are tried in order after ISO dates and Excel serials
var dayFirstLayouts = []string{
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/06",
	"2/1/06",
	"02.01.2006",
}

// Row is one data row keyed by normalised header
type Row struct {
	Number int
	values map[string]string
}

func newRow(number int, headers, cells []string) Row {
	values := make(map[string]string, len(headers))
	for i, header := range headers {
		if header == "" {
			continue
		}
		if i < len(cells) {
			values[header] = cleanCell(cells[i])
		} else {
			values[header] = ""
		}
	}
	return Row{Number: number, values: values}
}

// NewRow builds a row from a header-to-value map, normalising the headers
func NewRow(number int, values map[string]string) Row {
	row := Row{Number: number, values: make(map[string]string, len(values))}
	for k, v := range values {
		row.values[NormalizeHeader(k)] = cleanCell(v)
	}
	return row
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "nan", "nat", "none", "null", "<na>":
		return ""
	}
	return v
}

func (r Row) IsBlank() bool {
	for _, v := range r.values {
		if v != "" {
			return false
		}
	}
	return true
}

func (r Row) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// String returns the trimmed cell, or "" when the column is missing
func (r Row) String(key string) string {
	return r.values[key]
}

// Decimal parses a currency cell. Blank cells are zero; "$" and thousands separators are ignored.
func (r Row) Decimal(key string) (decimal.Decimal, error) {
	raw := strings.NewReplacer("$", "", ",", "", " ", "").Replace(r.values[key])
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("row %d: %s %q is not a number", r.Number, key, r.values[key])
	}
	return d.Round(2), nil
}

// Int parses a whole-number cell, accepting "12.0" as 12
func (r Row) Int(key string) (int, error) {
	raw := r.values[key]
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s %q is not a number", r.Number, key, raw)
	}
	return int(f), nil
}

// Bool reads Yes/No style cells
func (r Row) Bool(key string) bool {
	switch strings.ToLower(r.values[key]) {
	case "yes", "y", "true", "1", "1.0", "x", "paid", "✅":
		return true
	}
	return false
}

// Date parses ISO, Excel serial and day-first dates. ok is false for a blank cell.
func (r Row) Date(key string) (t time.Time, ok bool, err error) {
	raw := r.values[key]
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err = ParseDate(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("row %d: %s: %w", r.Number, key, err)
	}
	return t, true, nil
}

// Pin keeps only the digits of a PIN cell, after dropping a float suffix such as "1234.0"
func (r Row) Pin(key string) string {
	raw := r.values[key]
	if i := strings.Index(raw, "."); i >= 0 {
		raw = raw[:i]
	}
	return models.DigitsOnly(raw)
}

// Phone restores the leading zero spreadsheets strip from mobile numbers
func (r Row) Phone(key string) string {
	return models.NormalizePhone(r.values[key])
}

// Time returns an HH:MM cell, turning Excel day fractions like 0.3333 into 08:00
func (r Row) Time(key string) string {
	raw := r.values[key]
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 0 && f < 1 {
		minutes := int(f*24*60 + 0.5)
		return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	}
	if len(raw) >= 8 && strings.Count(raw, ":") == 2 {
		raw = raw[:5]
	}
	return raw
}

// ParseDate converts a spreadsheet date cell to a UTC calendar day
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := models.ParseDate(raw); err == nil {
		return t, nil
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial >= minDateSerial && serial <= maxDateSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return dayOf(t), nil
			}
		}
		return time.Time{}, fmt.Errorf("%q is not a date", raw)
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return dayOf(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%q is not a date", raw)
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
