package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// Table — лист как есть: строка заголовков и строки данных той же ширины.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadTable выберет парсер по расширению. headerRow — номер строки заголовков (1-based).
func ReadTable(r io.Reader, filename string, headerRow int) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}
}

// Index resolves a wanted header: exact, then case-insensitive, then by
// normalized key. Returns -1 when nothing fits.
func (t *Table) Index(want string) int {
	want = strings.TrimSpace(want)
	if want == "" {
		return -1
	}
	for i, h := range t.Headers {
		if h == want {
			return i
		}
	}
	for i, h := range t.Headers {
		if strings.EqualFold(h, want) {
			return i
		}
	}
	nWant := normHeaderKey(want)
	for i, h := range t.Headers {
		if normHeaderKey(h) == nWant {
			return i
		}
	}
	return -1
}

// EnsureColumn returns the index of the column, appending it when absent.
func (t *Table) EnsureColumn(name string) int {
	if i := t.Index(name); i >= 0 {
		return i
	}
	t.Headers = append(t.Headers, name)
	for r := range t.Rows {
		t.Rows[r] = append(t.Rows[r], "")
	}
	return len(t.Headers) - 1
}

func (t *Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

func (t *Table) Set(row, col int, v string) {
	if col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return
	}
	t.Rows[row][col] = v
}

// Column returns a copy of one column; a negative index gives blanks.
func (t *Table) Column(col int) []string {
	out := make([]string, len(t.Rows))
	for r := range t.Rows {
		out[r] = t.Cell(r, col)
	}
	return out
}

// Clone копирует таблицу целиком, чтобы правки не трогали исходник.
func (t *Table) Clone() *Table {
	c := &Table{
		Headers: append([]string(nil), t.Headers...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		c.Rows[i] = append([]string(nil), r...)
	}
	return c
}

var reHeaderNoise = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// нормализуем имя колонки: нижний регистр, NBSP, служебные символы -> пробел
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "\u3000", " ").Replace(s)
	s = reHeaderNoise.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// pickHeader — берёт строку заголовков и подставляет Column N для пустых.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		return nil
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToTable — выравнивает строки под ширину шапки, пропуская полностью пустые.
func rowsToTable(rows [][]string, headers []string, headerRow int) *Table {
	t := &Table{Headers: headers}
	start := headerRow // первая строка после заголовков
	if start < 1 {
		start = 1
	}
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		row := make([]string, len(headers))
		empty := true
		for c := range headers {
			if c < len(rec) {
				row[c] = strings.TrimSpace(rec[c])
			}
			if row[c] != "" {
				empty = false
			}
		}
		if !empty {
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}
