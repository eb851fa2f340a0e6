package rpfm

import "errors"

var (
	// ErrCLINotFound is returned when the rpfm_cli executable cannot be
	// located in the configured directory or on PATH.
	ErrCLINotFound = errors.New("rpfm_cli executable not found")

	// ErrSchemaNotFound is returned when no schema file exists for the
	// selected game.
	ErrSchemaNotFound = errors.New("rpfm schema not found")

	// ErrPackNotFound is returned when no pack file is configured and none
	// can be found in a known Steam library.
	ErrPackNotFound = errors.New("game pack file not found")

	// ErrUnknownGame is returned for a game key RPFM has no schema for.
	ErrUnknownGame = errors.New("unknown game")

	// ErrInvalidTableName is returned when a table name normalizes to
	// nothing.
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrNoTables is returned when an extraction is requested without any
	// table names.
	ErrNoTables = errors.New("no tables requested")
)
