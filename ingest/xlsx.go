package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func readXLSX(path string) ([]float32, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open spreadsheet: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrMalformed, sheets[0], err)
	}

	var samples []float32
	for r, row := range rows {
		for c, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 32)
			if err != nil {
				name, _ := excelize.CoordinatesToCellName(c+1, r+1)
				return nil, fmt.Errorf("%w: cell %s!%s: %q is not a number",
					ErrMalformed, sheets[0], name, cell)
			}
			samples = append(samples, float32(v))
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	return samples, nil
}
