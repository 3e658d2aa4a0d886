// Package spreadsheet reads column-labelled workbooks and writes tabular exports.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned for a workbook without any worksheet
var ErrNoSheets = errors.New("workbook has no sheets")

// Row is one data row keyed by normalized header. Index is the 1-based position below the
// header row, blank rows included.
type Row struct {
	Index  int
	Values map[string]string
}

// Get returns the trimmed cell under column, "" when the column is absent
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Values[column])
}

// Has reports whether the workbook carried column at all
func (r Row) Has(column string) bool {
	_, ok := r.Values[column]
	return ok
}

// IsBlank reports whether every cell of the row is empty
func (r Row) IsBlank() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// NormalizeHeader lower-cases a header and turns inner spaces into underscores
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), "_")
}

// ReadFile reads the first worksheet of the workbook at path
func ReadFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read reads the first worksheet of a workbook streamed from r
func Read(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) ([]Row, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return []Row{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = NormalizeHeader(h)
	}

	out := make([]Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		values := make(map[string]string, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			if col < len(cells) {
				values[name] = cells[col]
			} else {
				values[name] = ""
			}
		}
		out = append(out, Row{Index: i + 1, Values: values})
	}

	return out, nil
}
