package validation

import "errors"

var (
	ErrValidationFailed = errors.New("schema validation failed")
	ErrSchemaNotFound   = errors.New("schema not registered")
	ErrSchemaExists     = errors.New("schema already registered")
)
