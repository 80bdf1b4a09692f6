package toml

import "fmt"

const currentSchemaVersion = 1

// fileSchema is the layout of a TOML bill file. Bills stay untyped here;
// validation happens at intake so a bad entry only drops itself.
//
// TOML has no null. Nullable string fields (owner, reasonForDeferment,
// comment) use "" for null and must still be present.
type fileSchema struct {
	Version int              `toml:"version"`
	Bills   []map[string]any `toml:"bills"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported bills schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
