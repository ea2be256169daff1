// Package logger builds the zap logger shared by commands, the seeding engine
// and the HTTP server.
//
// Level accepts any zap level name. Debug switches to the development
// configuration; Format selects console or JSON encoding.
//
// WithRayID attaches the ray id assigned by the rayid middleware, so every
// line logged while serving a request can be correlated:
//
//	log, err := logger.New(&cfg.Log)
//	l := logger.WithRayID(log, c)
//	l.Warn("Unit failed", zap.String("entity", name))
package logger
