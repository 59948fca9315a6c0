package veggies

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for definition-time misuse.
var (
	// ErrNilTarget is returned when a declarator is invoked on a Declarator
	// that was constructed without an underlying schema target.
	ErrNilTarget = errors.New("veggies: declarator has no schema target")

	// ErrBadDeclaration is returned when a declarator is called with an
	// argument shape it does not support.
	ErrBadDeclaration = errors.New("veggies: bad declaration")

	// ErrUnknownType is returned when a related-type name does not resolve
	// to a registered entity.
	ErrUnknownType = errors.New("veggies: unknown entity type")
)

// DeclarationError reports a declarator invoked incorrectly while an entity
// was being defined: a relationship shorthand called with a partial explicit
// form, or any declarator called on a Declarator without a target.
type DeclarationError struct {
	entity     string // fully-qualified name of the declaring entity
	declarator string // declarator name, e.g. "owns"
	reason     string
	wrap       error
}

// Error returns the error string.
func (e *DeclarationError) Error() string {
	return fmt.Sprintf("veggies: %s: %s: %s", e.entity, e.declarator, e.reason)
}

// Is reports whether the target error matches ErrBadDeclaration or the
// wrapped sentinel. This allows errors.Is(err, ErrBadDeclaration) and, for
// targetless declarators, errors.Is(err, ErrNilTarget) to return true.
func (e *DeclarationError) Is(err error) bool {
	return err == ErrBadDeclaration || (e.wrap != nil && err == e.wrap)
}

// Entity returns the fully-qualified name of the declaring entity.
func (e *DeclarationError) Entity() string {
	return e.entity
}

// Declarator returns the name of the declarator that was misused.
func (e *DeclarationError) Declarator() string {
	return e.declarator
}

// NewDeclarationError returns a new DeclarationError.
func NewDeclarationError(entity, declarator, reason string) *DeclarationError {
	return &DeclarationError{entity: entity, declarator: declarator, reason: reason}
}

// IsDeclarationError returns true if the error is a DeclarationError.
func IsDeclarationError(err error) bool {
	if err == nil {
		return false
	}
	var e *DeclarationError
	return errors.As(err, &e) || errors.Is(err, ErrBadDeclaration)
}

// UnknownTypeError reports a related-type name that is not present in the
// type registry. It is produced when a schema description is resolved, not
// while declarators run, since a related entity may legitimately be defined
// after the one referencing it.
type UnknownTypeError struct {
	name       string   // the unresolved type name
	referredBy []string // entities whose relationships reference it
}

// Error returns the error string.
func (e *UnknownTypeError) Error() string {
	if len(e.referredBy) == 0 {
		return fmt.Sprintf("veggies: unknown entity type %q", e.name)
	}
	return fmt.Sprintf("veggies: unknown entity type %q (referenced by %s)", e.name, strings.Join(e.referredBy, ", "))
}

// Is reports whether the target error matches UnknownTypeError.
// This allows errors.Is(unknownTypeErr, ErrUnknownType) to return true.
func (e *UnknownTypeError) Is(err error) bool {
	return err == ErrUnknownType
}

// Name returns the unresolved type name.
func (e *UnknownTypeError) Name() string {
	return e.name
}

// ReferredBy returns the entities whose relationships reference the
// unresolved type, if recorded.
func (e *UnknownTypeError) ReferredBy() []string {
	return e.referredBy
}

// NewUnknownTypeError returns a new UnknownTypeError for the given type name.
func NewUnknownTypeError(name string, referredBy ...string) *UnknownTypeError {
	return &UnknownTypeError{name: name, referredBy: referredBy}
}

// IsUnknownType returns true if the error is an UnknownTypeError.
func IsUnknownType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownType)
}

// AggregateError represents multiple errors collected while an entity was
// being defined.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "veggies: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("veggies: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors, making errors.Is and errors.As
// traverse each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil. A single error is returned as-is.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
