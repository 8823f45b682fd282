package booking

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrOwnItem      = errors.New("cannot book own item")
	ErrInvalidDates = errors.New("invalid date range")
)
