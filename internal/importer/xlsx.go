// Package importer turns spreadsheet files into the generic rows the core
// consumes. It is the edge collaborator: nothing past this package ever sees
// an .xlsx file.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/informagico/fantavibe/internal/players"
)

// LoadFile reads the first sheet of an .xlsx file into rows. The first
// spreadsheet row is the header; every following row becomes one Row keyed by
// those headers. Blank trailing cells are simply absent keys.
func LoadFile(path string) ([]players.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return sheetRows(f)
}

// Load reads the first sheet of an .xlsx document from a reader.
func Load(r io.Reader) ([]players.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()
	return sheetRows(f)
}

func sheetRows(f *excelize.File) ([]players.Row, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]players.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(players.Row, len(headers))
		for i, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" || i >= len(line) {
				continue
			}
			cell := strings.TrimSpace(line[i])
			if cell == "" {
				continue
			}
			row[h] = cellValue(cell)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// cellValue types a cell the way sheet_to_json did in the original: numeric
// text becomes a number, everything else stays a string.
func cellValue(cell string) any {
	if f, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64); err == nil {
		return f
	}
	return cell
}
