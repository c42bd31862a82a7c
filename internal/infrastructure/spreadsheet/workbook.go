package spreadsheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when the named sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("spreadsheet: sheet not found")

// Snapshot is one sheet read in full: the header row plus ordered data rows.
// Rows may be ragged; Binding.Value reads safely past a short row.
type Snapshot struct {
	Headers []string
	Rows    [][]string
}

// Source loads a fresh snapshot of a named sheet. Each call opens its own
// copy of the tabular store; nothing is cached between requests.
type Source interface {
	Load(ctx context.Context, sheet string) (*Snapshot, error)
}

// ExcelSource reads snapshots from an .xlsx workbook on disk.
type ExcelSource struct {
	path string
}

// NewExcelSource creates a source backed by the workbook at path.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// Load opens the workbook, reads the named sheet in full, and closes it.
func (s *ExcelSource) Load(ctx context.Context, sheet string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Snapshot{}, nil
	}

	return &Snapshot{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
