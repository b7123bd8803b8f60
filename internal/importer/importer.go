// Package importer reads tabular data from files into grid cell entries.
//
// Every source is laid out the same way: header names on row 1 starting at
// column 1, records from row 2.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/gridline/internal/cells"
)

var (
	// ErrInvalidImport reports input that cannot be laid out as a grid.
	ErrInvalidImport = errors.New("invalid import data")
	// ErrUnsupportedFormat is returned for file extensions with no importer.
	ErrUnsupportedFormat = errors.New("unsupported import format")
)

// Format names an import source type.
type Format string

const (
	FormatJSON   Format = "json"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Options selects what to read from multi-part sources.
type Options struct {
	// Sheet is the XLSX sheet name. Empty means the first sheet.
	Sheet string
	// Table is the SQLite table name. Empty means the first table by name.
	Table string
	// Limit caps the number of records read. 0 means no limit.
	Limit int
}

// Result is an imported grid.
type Result struct {
	Format  Format
	Source  string
	Headers []string
	Entries []cells.Entry
	// Rows and Cols are the highest row and column indices used.
	Rows int
	Cols int
}

// Records returns the number of data rows below the header row.
func (r *Result) Records() int {
	return max(0, r.Rows-1)
}

// DetectFormat picks the importer from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads path with the importer matching its extension.
func LoadFile(ctx context.Context, path string, opts Options) (*Result, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var res *Result
	switch format {
	case FormatJSON:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		res, err = JSON(data, opts.Limit)
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", path, err)
		}
	case FormatXLSX:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		res, err = XLSX(f, info.Size(), opts)
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", path, err)
		}
	case FormatSQLite:
		res, err = SQLite(ctx, path, opts)
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", path, err)
		}
	}
	res.Source = path
	return res, nil
}

// builder accumulates entries in the header/records layout.
type builder struct {
	res   Result
	limit int
}

func newBuilder(format Format, limit int) *builder {
	return &builder{res: Result{Format: format}, limit: limit}
}

func (b *builder) header(names []string) {
	b.res.Headers = names
	for i, name := range names {
		b.set(i+1, 1, name)
	}
	b.res.Rows = max(b.res.Rows, 1)
}

// full reports whether the record limit has been reached.
func (b *builder) full(records int) bool {
	return b.limit > 0 && records >= b.limit
}

func (b *builder) set(col, row int, value string) {
	if value == "" {
		return
	}
	b.res.Entries = append(b.res.Entries, cells.Entry{
		Key:   cells.Key{Col: col, Row: row},
		Value: value,
	})
	b.res.Cols = max(b.res.Cols, col)
	b.res.Rows = max(b.res.Rows, row)
}

func (b *builder) result() *Result {
	res := b.res
	return &res
}
