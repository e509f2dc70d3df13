package noshow

import "errors"

var (
	ErrNoShowNotFound  = errors.New("no-show record not found")
	ErrAlreadyResolved = errors.New("no-show record is already resolved")
)
