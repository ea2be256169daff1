package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bulk-seeder/core/database"
	"bulk-seeder/core/seed"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Plan is a parsed seeding plan file.
type Plan struct {
	// Connections maps logical connection names to backends. A "default"
	// entry overrides the database section of the application config.
	Connections map[string]database.Config `yaml:"connections"`

	// Units are the import units in file order.
	Units []seed.Unit `yaml:"units"`

	// Dir is the directory of the plan file. Relative source paths and
	// schema files are resolved against it.
	Dir string `yaml:"-"`
}

// Load reads the plan at path from the OS filesystem.
func Load(path string) (*Plan, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs reads the plan at path from fs. YAML and JSON plans are accepted.
func LoadFs(fs afero.Fs, path string) (*Plan, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	p.Dir = filepath.Dir(path)

	if err := p.loadSchemas(fs); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse decodes plan content. Unknown fields are rejected.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("plan file is empty")
		}
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	if len(p.Units) == 0 {
		return nil, fmt.Errorf("plan declares no units")
	}
	for i, u := range p.Units {
		if u.Schema != "" && u.SchemaFile != "" {
			return nil, fmt.Errorf("unit %d (%s): schema and schema_file are mutually exclusive", i, u.Entity)
		}
	}
	return &p, nil
}

// loadSchemas reads every schema_file into the unit's Schema.
func (p *Plan) loadSchemas(fs afero.Fs) error {
	for i := range p.Units {
		u := &p.Units[i]
		if u.SchemaFile == "" {
			continue
		}
		path := u.SchemaFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.Dir, path)
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("unit %d (%s): failed to read schema file: %w", i, u.Entity, err)
		}
		u.Schema = string(data)
	}
	return nil
}

// ConnectionConfigs merges the plan connections over the default one.
// Relative sqlite files declared in the plan are resolved against Dir, like
// sources and schema files. The fallback comes from the environment and is
// left as is.
func (p *Plan) ConnectionConfigs(fallback database.Config) map[string]database.Config {
	out := make(map[string]database.Config, len(p.Connections)+1)
	out[seed.DefaultConnection] = fallback
	for name, cfg := range p.Connections {
		if cfg.Driver == database.DriverSQLite && isRelativeFile(cfg.Name) {
			cfg.Name = filepath.Join(p.Dir, cfg.Name)
		}
		out[name] = cfg
	}
	return out
}

// isRelativeFile reports whether a sqlite name is a relative file path rather
// than an in-memory database or a file: URI.
func isRelativeFile(name string) bool {
	if name == "" || name == ":memory:" || strings.HasPrefix(name, "file:") {
		return false
	}
	return !filepath.IsAbs(name)
}

// UsedConnections returns the connection names referenced by units.
func (p *Plan) UsedConnections() map[string]bool {
	used := make(map[string]bool)
	for _, u := range p.Units {
		used[u.ConnectionName()] = true
	}
	return used
}
