// Package report renders seeding audit logs for the console.
//
// Each connection gets a bordered block with the columns Order, Entity,
// Created, Status and File Size, one row per unit. Units that failed are
// listed afterwards, entity name first and error text below. Validation
// failures expand to their per-record field errors.
//
// Light mode swaps the box-drawing border for blanks, which copes better with
// terminals and log collectors that mangle wide characters. Colours are only
// emitted when requested, typically when ColorEnabled reports a terminal.
package report
