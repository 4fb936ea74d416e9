package taxonomy

import (
	"errors"
	"fmt"
)

var (
	ErrTermNotFound      = errors.New("taxonomy: term not found")
	ErrTermIDRequired    = errors.New("taxonomy: term id required")
	ErrLocaleRequired    = errors.New("taxonomy: locale required")
	ErrTranslationExists = errors.New("taxonomy: translation already exists")
	ErrDatabaseRequired  = errors.New("taxonomy: repository requires a database")
)

// NotFoundError reports a missing term or translation.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTermNotFound
}
