// Package repository provides the persistence capability used by the seeding
// engine.
//
// The engine asks the Registry for a Handle per unit, identified by a table (or
// collection) name and a logical connection name, and then inserts records one
// at a time with Handle.InsertOne, which returns the identity assigned by the
// backend.
//
// Two backends are available:
//   - GormBackend: MySQL and SQLite tables. Nested objects and lists are stored
//     as JSON text. The identity is the record's "id" value when present, the
//     driver's last insert id otherwise.
//   - MongoBackend: MongoDB collections. The identity is the document _id.
//
// A connection that is not registered yields an error wrapping ErrUnavailable.
package repository
