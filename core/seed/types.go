package seed

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConnection is the logical backend used when a unit names none.
	DefaultConnection = "default"

	// DefaultMarkerField is the reserved record field holding a synthetic id.
	DefaultMarkerField = "$metaID"

	// NoRefs is the Outcome.Refs sentinel for units without reference fields.
	NoRefs = "none"
)

// Record is a single untyped record decoded from a source file.
type Record = map[string]any

// Ref declares that a record field holds a synthetic id of another entity.
type Ref struct {
	// Entity is the RefStore namespace the synthetic id belongs to.
	Entity string `yaml:"entity" json:"entity"`
}

// UnmarshalYAML accepts both `field: {entity: Org}` and the short `field: Org`.
func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Entity = node.Value
		return nil
	}
	type plain Ref
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// Unit is one import unit of a seeding plan.
// Units are immutable for the duration of a run.
type Unit struct {
	// CreationOrder is the sort key; ties keep their position in the plan.
	CreationOrder int `yaml:"creation_order" json:"creation_order"`

	// Entity is the entity name. It is also the RefStore namespace of the
	// records created by this unit.
	Entity string `yaml:"entity" json:"entity"`

	// Alias overrides Entity in logs and reports when set.
	Alias string `yaml:"alias" json:"alias,omitempty"`

	// Table is the backend table or collection. Defaults to Entity.
	Table string `yaml:"table" json:"table,omitempty"`

	// Connection is the logical backend name. Defaults to "default".
	Connection string `yaml:"connection" json:"connection,omitempty"`

	// PathProd is the source used when running in production.
	PathProd string `yaml:"path_prod" json:"path_prod,omitempty"`

	// PathDev is the source used outside production.
	PathDev string `yaml:"path_dev" json:"path_dev,omitempty"`

	// Schema is CUE source every record must satisfy. Empty disables validation.
	Schema string `yaml:"schema" json:"schema,omitempty"`

	// SchemaFile is the file Schema was loaded from, kept for diagnostics.
	SchemaFile string `yaml:"schema_file" json:"schema_file,omitempty"`

	// Refs maps record fields to the entity whose synthetic ids they hold.
	Refs map[string]Ref `yaml:"refs" json:"refs,omitempty"`
}

// DisplayName returns the alias if present, the entity name otherwise.
func (u Unit) DisplayName() string {
	if u.Alias != "" {
		return u.Alias
	}
	return u.Entity
}

// ConnectionName returns the unit's connection or DefaultConnection.
func (u Unit) ConnectionName() string {
	if u.Connection != "" {
		return u.Connection
	}
	return DefaultConnection
}

// TableName returns the target table or collection.
func (u Unit) TableName() string {
	if u.Table != "" {
		return u.Table
	}
	return u.Entity
}

// SourcePath returns the path selected by the environment flag.
// An empty string means the unit has nothing to import in this environment.
func (u Unit) SourcePath(production bool) string {
	if production {
		return u.PathProd
	}
	return u.PathDev
}

// RefFields returns the declared reference fields in a stable order, or the
// NoRefs sentinel when none are declared.
func (u Unit) RefFields() []string {
	if len(u.Refs) == 0 {
		return []string{NoRefs}
	}
	fields := make([]string, 0, len(u.Refs))
	for field := range u.Refs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Options controls engine behaviour for a run.
type Options struct {
	// Production selects PathProd instead of PathDev.
	Production bool

	// MarkerField is the synthetic-id field. Defaults to DefaultMarkerField.
	MarkerField string

	// InsertTimeout bounds every single insert when positive.
	InsertTimeout time.Duration
}

func (o Options) markerField() string {
	if o.MarkerField != "" {
		return o.MarkerField
	}
	return DefaultMarkerField
}

// validateUnits rejects plans the engine cannot execute at all.
func validateUnits(units []Unit) error {
	for i, u := range units {
		if u.Entity == "" {
			return fmt.Errorf("unit %d: entity name is required", i)
		}
		for field, ref := range u.Refs {
			if field == "" {
				return fmt.Errorf("unit %d (%s): reference with empty field name", i, u.Entity)
			}
			if ref.Entity == "" {
				return fmt.Errorf("unit %d (%s): reference %q has no target entity", i, u.Entity, field)
			}
		}
	}
	return nil
}

// sortUnits returns a copy of units ordered by CreationOrder.
func sortUnits(units []Unit) []Unit {
	ordered := make([]Unit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreationOrder < ordered[j].CreationOrder
	})
	return ordered
}
