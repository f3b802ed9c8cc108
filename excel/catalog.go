// Package excel loads the wine price list from an xlsx workbook.
package excel

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"winepage"
)

// Column headers, matched exactly.
const (
	ColCategory  = "Категория"
	ColName      = "Название"
	ColPrice     = "Цена"
	ColImage     = "Картинка"
	ColGrapeType = "Сорт"
	ColPromotion = "Акция"
)

var requiredColumns = []string{ColCategory, ColName, ColPrice, ColImage}

var (
	// ErrNotFound means the path does not point at an existing file.
	ErrNotFound = errors.New("файл не найден")
	// ErrEmptyData means the workbook decoded but holds no rows.
	ErrEmptyData = errors.New("таблица пуста")
	// ErrParse means the file cannot be decoded as an xlsx workbook.
	ErrParse = errors.New("не удалось прочитать таблицу")
)

// MissingColumnsError lists every required column absent from the
// header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "отсутствуют обязательные колонки: " + strings.Join(e.Columns, ", ")
}

// LoadCatalog reads the price list at path. The existence check runs
// before any parse attempt so a missing file is never reported as a
// malformed one. Cell values normalize at parse time: blank,
// whitespace-only, "N/A" and "NULL" all become the empty string.
func LoadCatalog(path string) ([]winepage.Row, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyData
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]winepage.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		out = append(out, winepage.Row{
			Category:  cell(cells, cols, ColCategory),
			Name:      cell(cells, cols, ColName),
			Price:     cell(cells, cols, ColPrice),
			Image:     cell(cells, cols, ColImage),
			GrapeType: cell(cells, cols, ColGrapeType),
			Promotion: cell(cells, cols, ColPromotion),
		})
	}
	return out, nil
}

// mapColumns resolves header names to indices and reports every
// missing required column, not just the first.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return cols, nil
}

func cell(cells []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(cells) {
		return ""
	}
	return normalize(cells[idx])
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	switch v {
	case "N/A", "NULL":
		return ""
	}
	return v
}

func blankRow(cells []string) bool {
	for _, v := range cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
