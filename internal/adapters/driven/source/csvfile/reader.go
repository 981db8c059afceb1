// Package csvfile reads pipeline inputs from the local filesystem.
package csvfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.SourceReader = (*Reader)(nil)

// utf8BOM is stripped from the start of every file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader reads CSV and text files.
type Reader struct{}

// NewReader creates a new file reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadTable parses a CSV file whose first record is the header.
// Records shorter than the header omit the trailing columns from their row;
// extra fields beyond the header are dropped.
func (r *Reader) ReadTable(ctx context.Context, path string) ([]domain.Row, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	rows, err := ParseTable(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// ParseTable parses CSV with a header record into column-keyed rows.
// Header names are trimmed. Empty input yields no rows.
func ParseTable(in io.Reader) ([]domain.Row, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", domain.ErrInvalidInput, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []domain.Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}

		row := make(domain.Row, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadLines returns the file's lines without their terminators.
// A trailing newline does not produce an empty final line.
func (r *Reader) ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return lines, nil
}

// ReadText returns the whole file as a string.
func (r *Reader) ReadText(ctx context.Context, path string) (string, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readFile reads path with any BOM removed. A missing file wraps
// domain.ErrMissingInput.
func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}
