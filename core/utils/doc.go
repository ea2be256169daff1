// Package utils provides common utility functions for the seeder.
// It includes helpers for value normalisation and size conversion that are
// shared by the record sources and the ingestion engine.
package utils
