// Package validate checks seed records against CUE schemas.
//
// A schema is CUE source describing the shape of one record, for example:
//
//	name:  string & !=""
//	email: =~"^[^@]+@[^@]+$"
//	age?:  int & >=0
//	role:  *"member" | "admin"
//
// Each record is unified with the schema and must be concrete afterwards.
// Records may carry fields the schema does not mention unless the schema is
// closed (close({...})). Defaults declared in the schema are filled in on the
// validated records.
//
// Validation is all-or-nothing per batch: Validate returns either every record
// validated or the list of failures, never a partial set.
package validate
