package workspace

import "errors"

var (
	// ErrSchemaNotFound is returned when no schema with the given ID exists.
	ErrSchemaNotFound = errors.New("workspace: schema not found")
	// ErrInvalidName is returned when a schema name fails validation.
	ErrInvalidName = errors.New("workspace: invalid schema name")
)
