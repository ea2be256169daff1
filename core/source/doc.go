// Package source reads seed records from external resources.
//
// A source resolves a unit path to raw bytes, measures their size and decodes
// them into a sequence of untyped records. Two implementations are provided:
//
//   - FileSource: local files (through an afero filesystem, so tests can use
//     an in-memory filesystem).
//   - BucketSource: objects stored in an S3/MinIO bucket via storage.Client.
//
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// A document decoding to an empty sequence fails with ErrEmpty; a missing
// resource fails with ErrNotFound.
package source
