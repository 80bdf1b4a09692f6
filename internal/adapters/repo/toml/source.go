package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/bills-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

type Source struct {
	path string
}

var _ ports.BillRecordSource = (*Source)(nil)

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

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode bills file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	records := make([]ports.RawRecord, 0, len(file.Bills))
	for i, bill := range file.Bills {
		records = append(records, ports.RawRecord{Position: i, Value: bill})
	}

	return records, nil
}
