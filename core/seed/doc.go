// Package seed provides the ordered bulk-ingestion engine used to populate a
// persistent store from external record files.
//
// A run receives a list of import units (see Unit). Units are executed one at a
// time in ascending CreationOrder, ties keeping their position in the plan.
// For every unit the engine:
//
//  1. Selects the source path for the current environment (production or
//     development). A unit without a path for the environment is skipped and
//     logged with zero values.
//  2. Reads the records through a Source.
//  3. Strips the synthetic-id marker field (default "$metaID") from every record.
//  4. Rewrites declared reference fields from synthetic ids to the real ids
//     registered by earlier units (Resolver, RefStore).
//  5. Validates the records against the unit's CUE schema, if any.
//  6. Inserts the records one by one through the Repository and registers the
//     real id of every record that carried a marker.
//
// # Failure Isolation
//
// Every unit produces exactly one Outcome, appended to the AuditLog under the
// unit's connection. A failing unit records a UnitError on its Outcome and the
// run moves on to the next unit. Records inserted before an insert failure are
// kept and counted; nothing is rolled back.
//
// Only a malformed plan (for example a unit without an entity name) makes Run
// return an error, and in that case nothing is executed.
//
// # Reference Store
//
// The RefStore lives for exactly one run. It is created by Run, threaded
// through the Resolver and cleared when the run ends. Ordering between the unit
// creating an entity and the units referencing it is the caller's
// responsibility: a reference to an id that is not registered yet fails with an
// UnresolvedReferenceError.
//
// # Usage Example
//
//	engine := seed.NewEngine(src, validator, repo, logger, seed.Options{
//	    Production: cfg.Seed.Production,
//	})
//
//	auditLog, err := engine.Run(ctx, plan.Units)
//	if err != nil {
//	    return err // malformed plan
//	}
//	for _, conn := range auditLog.Connections() {
//	    for _, outcome := range auditLog.Entries(conn) {
//	        fmt.Println(outcome.Entity, outcome.Status())
//	    }
//	}
package seed
