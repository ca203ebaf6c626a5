// Package sheets reads the legacy operations spreadsheet exports (.xlsx and
// .xls) into header-keyed rows. Header and sheet-name normalisation happens
// here and nowhere else.
package sheets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const (
	SheetStaff            = "staff"
	SheetStaffDatabase    = "staff_database"
	SheetEvents           = "events"
	SheetEventFinancials  = "event_financials"
	SheetEventContacts    = "event_contacts"
	SheetLogisticsDetails = "logistics_details"
	SheetEventReports     = "event_reports"
	SheetEventStaffing    = "event_staffing"
	SheetEventSales       = "event_sales"

	DefaultMaxRows = 100000
)

// ImportOrder lists the recognised sheets, parents before the rows that reference them
var ImportOrder = []string{
	SheetStaff,
	SheetStaffDatabase,
	SheetEvents,
	SheetEventFinancials,
	SheetEventContacts,
	SheetLogisticsDetails,
	SheetEventReports,
	SheetEventStaffing,
	SheetEventSales,
}

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoWorksheet       = errors.New("no worksheet found")
	ErrMultipleSheets    = errors.New("multiple worksheets found in .xls file")
)

// headerAliases maps legacy column names onto the current column names
var headerAliases = map[string]string{
	"eftpos": "card_sales",
	"card":   "card_sales",
	"cash":   "cash_sales",
	"total":  "total_revenue",
}

// Sheet is one worksheet. Name is normalised, e.g. "Event_Sales" becomes "event_sales".
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Workbook holds the worksheets in file order
type Workbook struct {
	Source string
	Sheets []Sheet
}

// Sheet returns the worksheet with the given normalised name
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// Read loads a workbook. For .xls files, which carry a single sheet, sheetName
// names it; .xlsx files keep their own sheet names.
func Read(r io.Reader, filename, sheetName string, maxRows int) (*Workbook, error) {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(data, filename, maxRows)
	case ".xls":
		return readXLS(data, filename, sheetName, maxRows)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func readXLSX(data []byte, filename string, maxRows int) (*Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	names := file.GetSheetList()
	if len(names) == 0 {
		return nil, ErrNoWorksheet
	}

	book := &Workbook{Source: filename}
	for _, name := range names {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		if len(rows) > maxRows+1 {
			rows = rows[:maxRows+1]
		}
		book.Sheets = append(book.Sheets, buildSheet(name, rows))
	}

	return book, nil
}

func readXLS(data []byte, filename, sheetName string, maxRows int) (*Workbook, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}
	if workbook.NumSheets() > 1 {
		return nil, ErrMultipleSheets
	}

	if sheetName == "" {
		if sheet := workbook.GetSheet(0); sheet != nil {
			sheetName = sheet.Name
		}
	}

	rows := workbook.ReadAllCells(maxRows + 1)
	return &Workbook{
		Source: filename,
		Sheets: []Sheet{buildSheet(sheetName, rows)},
	}, nil
}

func buildSheet(name string, rows [][]string) Sheet {
	sheet := Sheet{Name: NormalizeName(name)}
	if len(rows) == 0 {
		return sheet
	}

	sheet.Headers = make([]string, len(rows[0]))
	for i, header := range rows[0] {
		sheet.Headers[i] = NormalizeHeader(header)
	}

	for i, cells := range rows[1:] {
		row := newRow(i+2, sheet.Headers, cells)
		if row.IsBlank() {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}

// NormalizeName lower-cases a sheet or column name and joins its words with underscores
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(name, "_", " "))), "_")
}

// NormalizeHeader is NormalizeName plus the legacy column aliases
func NormalizeHeader(header string) string {
	name := NormalizeName(header)
	if alias, ok := headerAliases[name]; ok {
		return alias
	}
	return name
}
