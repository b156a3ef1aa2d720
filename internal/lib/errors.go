package lib

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors forming the closed set of failure kinds this backend
// reports. Every service-level error wraps exactly one of these so the HTTP
// boundary can map it to a transport code without inspecting messages.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrExternalDependency = errors.New("external dependency failure")
	ErrPersistence        = errors.New("persistence failure")
)

// NotFoundError wraps ErrNotFound with a resource description.
func NotFoundError(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}

// NotAuthorizedError wraps ErrNotAuthorized with a reason.
func NotAuthorizedError(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotAuthorized, reason)
}

// InvalidRequestError wraps ErrInvalidRequest with a reason.
func InvalidRequestError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, reason)
}

// ExternalError wraps a failure from an external collaborator (object store,
// mail relay, broker) so callers can distinguish it from local failures.
func ExternalError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExternalDependency, operation, err)
}

// PersistenceError translates a storage error into the closed taxonomy.
// gorm's record-not-found becomes ErrNotFound, everything else is a generic
// persistence failure.
func PersistenceError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: record", ErrNotFound)
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

func IsNotFound(err error) bool           { return errors.Is(err, ErrNotFound) }
func IsNotAuthorized(err error) bool      { return errors.Is(err, ErrNotAuthorized) }
func IsInvalidRequest(err error) bool     { return errors.Is(err, ErrInvalidRequest) }
func IsExternalDependency(err error) bool { return errors.Is(err, ErrExternalDependency) }
