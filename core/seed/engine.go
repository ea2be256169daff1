package seed

import (
	"context"
	"errors"

	"bulk-seeder/core/repository"
	"bulk-seeder/core/source"
	"bulk-seeder/core/utils"

	"go.uber.org/zap"
)

// Engine executes seeding plans.
type Engine struct {
	source    Source
	validator Validator
	repo      Repository
	logger    *zap.Logger
	opts      Options
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(src Source, validator Validator, repo Repository, logger *zap.Logger, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		source:    src,
		validator: validator,
		repo:      repo,
		logger:    logger,
		opts:      opts,
	}
}

// Run executes every unit in creation order and returns the audit log.
// Unit failures are recorded on their outcomes; the returned error is only
// set for plans that cannot be executed at all.
func (e *Engine) Run(ctx context.Context, units []Unit) (*AuditLog, error) {
	if err := validateUnits(units); err != nil {
		return nil, err
	}

	refs := NewRefStore()
	defer refs.Reset()

	auditLog := NewAuditLog()
	for _, unit := range sortUnits(units) {
		auditLog.Append(e.runUnit(ctx, unit, refs))
	}

	totals := auditLog.Totals()
	e.logger.Info("Seeding finished",
		zap.Int("units", totals.Units),
		zap.Int("failed", totals.Failed),
		zap.Int("created", totals.Created),
	)

	return auditLog, nil
}

// runUnit processes one unit and always returns its outcome.
func (e *Engine) runUnit(ctx context.Context, unit Unit, refs *RefStore) Outcome {
	outcome := Outcome{
		CreationOrder: unit.CreationOrder,
		Entity:        unit.DisplayName(),
		Connection:    unit.ConnectionName(),
		Refs:          unit.RefFields(),
	}

	l := e.logger.With(
		zap.Int("order", unit.CreationOrder),
		zap.String("entity", outcome.Entity),
		zap.String("connection", outcome.Connection),
	)

	path := unit.SourcePath(e.opts.Production)
	if path == "" {
		l.Debug("No source path for this environment, skipping unit")
		return outcome
	}

	handle, err := e.repo.Handle(ctx, unit.TableName(), outcome.Connection)
	if err != nil {
		outcome.Err = &RepositoryUnavailableError{Connection: outcome.Connection, Table: unit.TableName(), Err: err}
		l.Warn("Unit failed", zap.Error(outcome.Err))
		return outcome
	}

	res, err := e.source.Read(ctx, path)
	if err != nil {
		if errors.Is(err, source.ErrEmpty) {
			outcome.Err = &EmptySourceError{Path: path}
		} else {
			outcome.Err = &SourceError{Path: path, Err: err}
		}
		l.Warn("Unit failed", zap.String("path", path), zap.Error(outcome.Err))
		return outcome
	}
	outcome.FileSize = res.SizeKB

	created, err := e.ingest(ctx, unit, handle, res.Records, refs)
	outcome.Created = created
	if err != nil {
		var uerr UnitError
		if !errors.As(err, &uerr) {
			uerr = &InsertError{Index: created, Err: err}
		}
		outcome.Err = uerr
		l.Warn("Unit failed", zap.Int("created", created), zap.String("kind", string(uerr.Kind())), zap.Error(uerr))
		return outcome
	}

	l.Info("Unit seeded", zap.Int("created", created), zap.Float64("file_size_kb", outcome.FileSize))
	return outcome
}

// ingest resolves, validates and inserts the records of a unit.
// It returns the number of records persisted before any failure.
func (e *Engine) ingest(ctx context.Context, unit Unit, handle repository.Handle, raw []Record, refs *RefStore) (int, error) {
	records, markers := splitMarkers(raw, e.opts.markerField())

	if len(unit.Refs) > 0 {
		resolver := NewResolver(refs)
		for i, rec := range records {
			resolved, err := resolver.Resolve(rec, unit.Refs)
			if err != nil {
				return 0, err
			}
			records[i] = resolved
		}
	}

	if unit.Schema != "" {
		valid, failures, err := e.validator.Validate(ctx, unit.Schema, records)
		if err != nil {
			return 0, &ValidationError{Err: err}
		}
		if len(failures) > 0 {
			// report the rows as written in the source, synthetic ids included
			for i := range failures {
				failures[i].Record = raw[failures[i].Index]
			}
			return 0, &ValidationError{Failures: failures}
		}
		records = valid
	}

	created := 0
	for i, rec := range records {
		realID, err := e.insert(ctx, handle, rec)
		if err != nil {
			return created, &InsertError{Index: i, Err: err}
		}
		created++
		if markers[i] != "" {
			refs.Register(unit.Entity, markers[i], realID)
		}
	}

	return created, nil
}

func (e *Engine) insert(ctx context.Context, handle repository.Handle, rec Record) (any, error) {
	if e.opts.InsertTimeout <= 0 {
		return handle.InsertOne(ctx, rec)
	}
	ctx, cancel := context.WithTimeout(ctx, e.opts.InsertTimeout)
	defer cancel()
	return handle.InsertOne(ctx, rec)
}

// splitMarkers copies records without the marker field and returns the
// markers index-aligned with the records. Records without a marker get "".
func splitMarkers(records []Record, field string) ([]Record, []string) {
	out := make([]Record, len(records))
	markers := make([]string, len(records))
	for i, rec := range records {
		clean := make(Record, len(rec))
		for k, v := range rec {
			if k == field {
				if v != nil {
					markers[i] = utils.ToString(v)
				}
				continue
			}
			clean[k] = v
		}
		out[i] = clean
	}
	return out, markers
}
