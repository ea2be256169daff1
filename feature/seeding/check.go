package seeding

import (
	"context"
	"errors"
	"sort"

	"bulk-seeder/core/database"
	"bulk-seeder/core/plan"
	"bulk-seeder/core/repository"
	"bulk-seeder/core/seed"
	"bulk-seeder/core/source"
	"bulk-seeder/core/validate"

	"go.uber.org/zap"
)

// UnitCheck is the dry-run result of one unit.
type UnitCheck struct {
	CreationOrder  int      `json:"creation_order"`
	Entity         string   `json:"entity"`
	Connection     string   `json:"connection"`
	Path           string   `json:"path,omitempty"`
	Skipped        bool     `json:"skipped,omitempty"`
	Records        int      `json:"records"`
	FileSize       float64  `json:"file_size"`
	SchemaError    string   `json:"schema_error,omitempty"`
	SourceError    string   `json:"source_error,omitempty"`
	BackendError   string   `json:"backend_error,omitempty"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// OK reports whether the unit would start without a known defect.
func (u UnitCheck) OK() bool {
	return u.SchemaError == "" && u.SourceError == "" && u.BackendError == "" && len(u.MissingColumns) == 0
}

// CheckReport is the dry-run result of a plan.
type CheckReport struct {
	Units  []UnitCheck  `json:"units"`
	Issues []plan.Issue `json:"issues"`
	OK     bool         `json:"ok"`
}

// Checker inspects a plan without writing to any backend.
type Checker struct {
	source      seed.Source
	validator   *validate.Validator
	registry    *repository.Registry
	markerField string
	logger      *zap.Logger
}

// NewChecker creates a checker. registry may be nil to skip backend checks.
func NewChecker(src seed.Source, validator *validate.Validator, registry *repository.Registry, markerField string, logger *zap.Logger) *Checker {
	if markerField == "" {
		markerField = seed.DefaultMarkerField
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		source:      src,
		validator:   validator,
		registry:    registry,
		markerField: markerField,
		logger:      logger,
	}
}

// Check compiles every schema, reads every selected source, verifies SQL
// tables have a column for every record field and lints reference ordering.
func (c *Checker) Check(ctx context.Context, units []seed.Unit, production bool) (*CheckReport, error) {
	ordered := make([]seed.Unit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreationOrder < ordered[j].CreationOrder
	})

	rep := &CheckReport{Issues: plan.Lint(units, production)}
	for _, u := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rep.Units = append(rep.Units, c.checkUnit(ctx, u, production))
	}

	rep.OK = len(rep.Issues) == 0
	for _, u := range rep.Units {
		if !u.OK() {
			rep.OK = false
		}
	}
	return rep, nil
}

func (c *Checker) checkUnit(ctx context.Context, u seed.Unit, production bool) UnitCheck {
	uc := UnitCheck{
		CreationOrder: u.CreationOrder,
		Entity:        u.DisplayName(),
		Connection:    u.ConnectionName(),
		Path:          u.SourcePath(production),
	}

	if u.Schema != "" {
		if _, err := c.validator.Compile(u.Schema); err != nil {
			uc.SchemaError = err.Error()
		}
	}

	if uc.Path == "" {
		uc.Skipped = true
		return uc
	}

	res, err := c.source.Read(ctx, uc.Path)
	if err != nil {
		if errors.Is(err, source.ErrEmpty) {
			uc.SourceError = "source is empty"
		} else {
			uc.SourceError = err.Error()
		}
		return uc
	}
	uc.Records = len(res.Records)
	uc.FileSize = res.SizeKB

	if c.registry != nil {
		missing, err := c.missingColumns(ctx, u, res.Records)
		if err != nil {
			uc.BackendError = err.Error()
		}
		uc.MissingColumns = missing
	}

	if !uc.OK() {
		c.logger.Warn("Unit check failed", zap.String("entity", uc.Entity), zap.Any("check", uc))
	}
	return uc
}

// missingColumns compares the record fields with the table columns. Only SQL
// backends have a fixed set of columns.
func (c *Checker) missingColumns(ctx context.Context, u seed.Unit, records []seed.Record) ([]string, error) {
	if _, err := c.registry.Handle(ctx, u.TableName(), u.ConnectionName()); err != nil {
		return nil, err
	}
	backend, _ := c.registry.Backend(u.ConnectionName())
	gb, ok := backend.(*repository.GormBackend)
	if !ok {
		return nil, nil
	}

	columns, err := database.GetTableColumns(gb.DB(), u.TableName())
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, errors.New("table " + u.TableName() + " does not exist")
	}
	return database.MissingColumns(columns, recordFields(records, c.markerField)), nil
}

// recordFields returns every field used by at least one record, except the
// marker field.
func recordFields(records []seed.Record, marker string) []string {
	seen := make(map[string]struct{})
	var fields []string
	for _, rec := range records {
		for k := range rec {
			if k == marker {
				continue
			}
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				fields = append(fields, k)
			}
		}
	}
	sort.Strings(fields)
	return fields
}
