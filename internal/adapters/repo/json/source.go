package json

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/bills-cli/internal/ports"
)

// Source reads a JSON bill file. The file holds either a bare array of bill
// objects or an object with a "bills" array.
type Source struct {
	path string
}

var _ ports.BillRecordSource = (*Source)(nil)

type fileSchema struct {
	Bills []any `json:"bills"`
}

func NewSource(path string) (*Source, error) {
	if path == "" {
		return nil, errors.New("bills path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve bills path: %w", err)
	}

	return &Source{path: filepath.Clean(absPath)}, nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Records(ctx context.Context) ([]ports.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read bills file: %w", err)
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("decode bills file: %w", err)
	}

	records := make([]ports.RawRecord, 0, len(entries))
	for i, entry := range entries {
		records = append(records, ports.RawRecord{Position: i, Value: entry})
	}

	return records, nil
}

func decodeEntries(data []byte) ([]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("file is empty")
	}

	if trimmed[0] == '[' {
		var entries []any
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var file fileSchema
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, err
	}
	if file.Bills == nil {
		return nil, errors.New(`missing "bills" array`)
	}

	return file.Bills, nil
}
