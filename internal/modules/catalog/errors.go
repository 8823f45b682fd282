package catalog

import "errors"

var (
	ErrInvalidCanton = errors.New("invalid canton")
	ErrNotFound      = errors.New("item not found")
)
