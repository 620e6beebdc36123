package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies an error for handler-side status mapping.
type Kind string

const (
	KindValidation Kind = "validation"
	KindPermission Kind = "permission"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindConstraint Kind = "constraint"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func Validationf(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

func Permissionf(format string, args ...interface{}) *Error {
	return newf(KindPermission, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func Constraintf(format string, args ...interface{}) *Error {
	return newf(KindConstraint, format, args...)
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// FromDB translates gorm errors into the business taxonomy. The resource
// name ends up in the message so callers never see raw database errors.
func FromDB(err error, resource string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Message: resource + " not found", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConstraint, Message: resource + " already exists", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindConstraint, Message: resource + " is referenced by other records", Err: err}
	}
	return err
}
