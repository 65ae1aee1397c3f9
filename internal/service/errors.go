package service

import (
	"errors"

	"Taller/internal/utils"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already exists")
	ErrBadReference = errors.New("referenced row does not exist")
)

// mapWriteError translates constraint violations into sentinel errors so
// handlers never have to look at driver error codes. Anything else is an
// infrastructure fault and passes through unchanged.
func mapWriteError(err error) error {
	switch {
	case utils.IsPGUniqueViolation(err):
		return ErrDuplicate
	case utils.IsPGForeignKeyViolation(err):
		return ErrBadReference
	}
	return err
}
