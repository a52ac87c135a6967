package commands

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequiredField is returned when a subcommand is missing a mandatory value
	ErrMissingRequiredField = errors.New("required field not set")
	// ErrInvalidRepository is returned when the repository is not in owner/name form
	ErrInvalidRepository = errors.New("repository must be in owner/name form")
)

// Field pairs a field name with whether a value was provided for it
type Field struct {
	Name string
	Set  bool
}

// Required describes a mandatory field
func Required(name string, set bool) Field {
	return Field{Name: name, Set: set}
}

// RequireFields fails on the first field that was not provided, naming it in the error
func RequireFields(fields ...Field) error {
	for _, f := range fields {
		if !f.Set {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, f.Name)
		}
	}
	return nil
}

// ParseRepository splits "owner/name" into its two parts
func ParseRepository(repo string) (string, string, error) {
	org, name, ok := strings.Cut(repo, "/")
	if !ok || org == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, repo)
	}
	return org, name, nil
}
