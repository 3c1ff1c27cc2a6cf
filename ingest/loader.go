// Package ingest reads sample records from disk.
//
// CSV files hold comma and/or newline separated numbers; trailing commas and
// blank fields are ignored. Spreadsheets (.xlsx) are read cell by cell,
// row-major, from their first sheet.
package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/RyanBlaney/sonido-swell/logging"
)

var (
	// ErrNotFound reports a record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmpty reports a record without any sample.
	ErrEmpty = errors.New("record is empty")
	// ErrMalformed reports a record containing something other than numbers.
	ErrMalformed = errors.New("record is malformed")
)

// Format identifies how a record is encoded.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatOf picks the record format from the file extension. Anything that is
// not a spreadsheet is read as CSV.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// FileLoader loads records from the local filesystem.
type FileLoader struct {
	logger logging.Logger
}

// NewFileLoader creates a loader. A nil logger selects the global logger.
func NewFileLoader(logger logging.Logger) *FileLoader {
	return &FileLoader{
		logger: logging.OrGlobal(logger).WithFields(logging.Fields{"component": "ingest"}),
	}
}

// LoadSamples reads every sample of the record at path.
func (l *FileLoader) LoadSamples(path string) ([]float32, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, err
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrMalformed, path)
	}

	format := FormatOf(path)
	var samples []float32
	switch format {
	case FormatXLSX:
		samples, err = readXLSX(path)
	default:
		samples, err = readCSVFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("record loaded", logging.Fields{
		"path":    path,
		"format":  format,
		"samples": len(samples),
	})
	return samples, nil
}
