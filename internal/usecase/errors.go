package usecase

import (
	"errors"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError reports a request the service refuses to act on.
// Fields maps JSON field names to messages when the failure is field-level.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + utils.FormatValidationErrors(e.Fields)
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d %w", kind, id, ErrNotFound)
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

func invalid(field, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &ValidationError{Message: msg, Fields: map[string]string{field: msg}}
}

func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Message: "validation failed", Fields: errs}
	}
	return nil
}

func checkRouteID(routeID, bodyID int64) error {
	if routeID != bodyID {
		return invalid("id", "id %d in body does not match id %d in route", bodyID, routeID)
	}
	return nil
}

// commitError classifies a failed Complete. A dangling reference becomes a
// validation error. A concurrency conflict becomes not-found when exists
// reports the row gone; otherwise the conflict is returned unchanged.
func commitError(err error, kind string, id int64, exists func(id int64) (bool, error)) error {
	if errors.Is(err, repository.ErrInvalidReference) {
		return &ValidationError{Message: err.Error()}
	}
	if !errors.Is(err, repository.ErrConcurrencyConflict) || exists == nil {
		return err
	}

	found, existsErr := exists(id)
	if existsErr != nil {
		return errors.Join(err, existsErr)
	}
	if !found {
		return notFound(kind, id)
	}
	return err
}
