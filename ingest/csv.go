package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func readCSVFile(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses comma and newline separated numbers. Rows may have any
// number of fields and blank fields are skipped.
func ReadCSV(r io.Reader) ([]float32, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var samples []float32
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		line, _ := reader.FieldPos(0)
		for col, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q is not a number",
					ErrMalformed, line, col+1, field)
			}
			samples = append(samples, float32(v))
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	return samples, nil
}
