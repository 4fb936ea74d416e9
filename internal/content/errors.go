package content

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound        = errors.New("content: node not found")
	ErrNodeIDRequired      = errors.New("content: node id required")
	ErrLocaleRequired      = errors.New("content: locale required")
	ErrTranslationExists   = errors.New("content: translation already exists")
	ErrRepositoryNotConfig = errors.New("content: repository requires a database")
)

// NotFoundError reports a missing record keyed by resource and identifier.
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
	return ErrNodeNotFound
}
