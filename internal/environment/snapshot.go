package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"

	"github.com/auditdb/stackgen/internal/filesystems"
	"github.com/joho/godotenv"
)

// Sources recorded for snapshot values.
const (
	SourceProcess = "process"
	SourceDotEnv  = "dotenv"
)

// Snapshot is an immutable view of environment variables. A key that is not
// present is absent, which is different from a key set to "".
type Snapshot struct {
	values  map[string]string
	sources map[string]string
}

// FromMap builds a snapshot from a plain map. Tests use it to describe the
// environment explicitly.
func FromMap(values map[string]string) Snapshot {
	s := Snapshot{
		values:  make(map[string]string, len(values)),
		sources: make(map[string]string, len(values)),
	}
	for key, value := range values {
		s.values[key] = value
		s.sources[key] = SourceProcess
	}
	return s
}

// Load reads envFile from filesystem (a missing file is not an error) and
// overlays environ, the process environment in os.Environ form. Process
// values win over the file, as with godotenv.Load.
func Load(filesystem filesystems.FileSystem, envFile string, environ []string) (Snapshot, error) {
	s := Snapshot{
		values:  make(map[string]string),
		sources: make(map[string]string),
	}

	if envFile != "" {
		content, err := filesystem.ReadFile(envFile)
		switch {
		case err == nil:
			parsed, err := godotenv.Unmarshal(string(content))
			if err != nil {
				return Snapshot{}, fmt.Errorf("failed to parse %s: %w", envFile, err)
			}
			for key, value := range parsed {
				s.values[key] = value
				s.sources[key] = fmt.Sprintf("%s:%s", SourceDotEnv, envFile)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Snapshot{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		s.values[key] = value
		s.sources[key] = SourceProcess
	}

	return s, nil
}

// Lookup returns the value of key and whether it is present.
func (s Snapshot) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Source describes where key came from, or "" when absent.
func (s Snapshot) Source(key string) string {
	return s.sources[key]
}

// Mapping returns a copy of all values.
func (s Snapshot) Mapping() map[string]string {
	return maps.Clone(s.values)
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.values)
}
